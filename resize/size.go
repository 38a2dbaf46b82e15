package resize

// Size describes a two-dimensional extent by its larger and smaller axis,
// decoupled from orientation. Implementations are immutable value types.
type Size interface {
	// Major returns the larger of the two dimensions.
	Major() int
	// Minor returns the smaller of the two dimensions.
	Minor() int
}

type size struct {
	major, minor int
}

// NewSize builds a Size from two dimensions in either order.
func NewSize(a, b int) Size {
	if a >= b {
		return size{major: a, minor: b}
	}
	return size{major: b, minor: a}
}

func (s size) Major() int { return s.major }
func (s size) Minor() int { return s.minor }

// ExactSize is a Size that also remembers which axis was the width and
// which the height, so {width,height} == {major,minor} as an unordered pair.
type ExactSize struct {
	width, height int
}

// NewExactSize builds an ExactSize from labeled dimensions.
func NewExactSize(width, height int) ExactSize {
	return ExactSize{width: width, height: height}
}

// Width returns the dimension originally supplied as width.
func (s ExactSize) Width() int { return s.width }

// Height returns the dimension originally supplied as height.
func (s ExactSize) Height() int { return s.height }

func (s ExactSize) Major() int { return max(s.width, s.height) }
func (s ExactSize) Minor() int { return min(s.width, s.height) }
