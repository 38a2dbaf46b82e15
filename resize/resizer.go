package resize

import (
	"fmt"
	"math"
)

// Resizer maps an input extent to a target extent under one policy. Policies
// are stateless and deterministic; OutputSize fails only for inputs the
// policy cannot satisfy (a result dimension would not be positive).
type Resizer interface {
	OutputSize(input Size) (Size, error)
}

// PassThroughResizer returns the input unchanged.
type PassThroughResizer struct{}

// NewPassThroughResizer returns the identity policy.
func NewPassThroughResizer() PassThroughResizer { return PassThroughResizer{} }

func (PassThroughResizer) OutputSize(input Size) (Size, error) {
	return input, nil
}

// ExactResizer always returns a fixed target extent. It is an override, not
// a scale: the input dimensions are ignored entirely.
type ExactResizer struct {
	target Size
}

// NewExactResizer builds an ExactResizer for the two target dimensions, in
// either order.
func NewExactResizer(a, b int) ExactResizer {
	return ExactResizer{target: NewSize(a, b)}
}

func (r ExactResizer) OutputSize(Size) (Size, error) {
	if r.target.Minor() <= 0 {
		return nil, fmt.Errorf("exact resizer: non-positive target %dx%d",
			r.target.Major(), r.target.Minor())
	}
	return r.target, nil
}

// FractionResizer scales both axes by a fixed fraction in (0,1], rounding
// half up and preserving the input's major/minor labeling.
type FractionResizer struct {
	fraction float64
}

// NewFractionResizer builds a FractionResizer for the given downscale
// fraction. Values outside (0,1] are rejected when the policy runs.
func NewFractionResizer(fraction float64) FractionResizer {
	return FractionResizer{fraction: fraction}
}

func (r FractionResizer) OutputSize(input Size) (Size, error) {
	if r.fraction <= 0 || r.fraction > 1 {
		return nil, fmt.Errorf("fraction resizer: fraction %v outside (0, 1]", r.fraction)
	}
	major := roundHalfUp(float64(input.Major()) * r.fraction)
	minor := roundHalfUp(float64(input.Minor()) * r.fraction)
	if major < 1 || minor < 1 {
		return nil, fmt.Errorf("fraction resizer: %v of %dx%d collapses to zero",
			r.fraction, input.Major(), input.Minor())
	}
	return NewSize(major, minor), nil
}

// AtMostResizer caps the minor axis (and optionally the major axis) of the
// input, downscaling uniformly so the aspect ratio is preserved. It never
// upscales: inputs already within the caps pass through unchanged. Scaled
// dimensions are rounded down to even values for encoder alignment, except
// an axis that landed exactly on its cap.
type AtMostResizer struct {
	minorCap, majorCap int
}

// NewAtMostResizer caps only the minor axis.
func NewAtMostResizer(minorCap int) AtMostResizer {
	return AtMostResizer{minorCap: minorCap, majorCap: math.MaxInt}
}

// NewAtMostResizerWithMajor caps both axes independently; the tighter of the
// two uniform scale factors wins.
func NewAtMostResizerWithMajor(minorCap, majorCap int) AtMostResizer {
	return AtMostResizer{minorCap: minorCap, majorCap: majorCap}
}

func (r AtMostResizer) OutputSize(input Size) (Size, error) {
	if input.Minor() <= 0 {
		return nil, fmt.Errorf("at-most resizer: non-positive input %dx%d",
			input.Major(), input.Minor())
	}
	if r.minorCap <= 0 || r.majorCap <= 0 {
		return nil, fmt.Errorf("at-most resizer: non-positive cap %d/%d",
			r.minorCap, r.majorCap)
	}
	if input.Minor() <= r.minorCap && input.Major() <= r.majorCap {
		return input, nil
	}
	scale := math.Min(
		float64(r.minorCap)/float64(input.Minor()),
		float64(r.majorCap)/float64(input.Major()),
	)
	major := roundHalfUp(float64(input.Major()) * scale)
	minor := roundHalfUp(float64(input.Minor()) * scale)
	if major%2 != 0 && major != r.majorCap {
		major--
	}
	if minor%2 != 0 && minor != r.minorCap {
		minor--
	}
	if major < 1 || minor < 1 {
		return nil, fmt.Errorf("at-most resizer: caps %d/%d collapse %dx%d to zero",
			r.minorCap, r.majorCap, input.Major(), input.Minor())
	}
	return NewSize(major, minor), nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
