package resize

// MultiResizer folds an input extent through an ordered chain of policies,
// feeding each policy's output to the next. The first failure aborts the
// chain and propagates unchanged. An empty chain is the identity; order is
// caller-controlled and never rearranged.
type MultiResizer struct {
	resizers []Resizer
}

// NewMultiResizer builds a chain from the given policies, applied in order.
func NewMultiResizer(resizers ...Resizer) *MultiResizer {
	return &MultiResizer{resizers: resizers}
}

// Add appends a policy to the end of the chain.
func (m *MultiResizer) Add(r Resizer) {
	m.resizers = append(m.resizers, r)
}

// Len returns the number of policies in the chain.
func (m *MultiResizer) Len() int {
	return len(m.resizers)
}

func (m *MultiResizer) OutputSize(input Size) (Size, error) {
	out := input
	for _, r := range m.resizers {
		var err error
		out, err = r.OutputSize(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
