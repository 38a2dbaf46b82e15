package strategy

import (
	"errors"
	"fmt"
)

// The two non-success outcomes of a decision. They must never be conflated:
// ErrUnavailable is a hard failure to surface, ErrAlreadyCompressed an
// expected short-circuit meaning "pass this track through unchanged".
// Discriminate with errors.Is.
var (
	ErrUnavailable       = errors.New("track strategy unavailable")
	ErrAlreadyCompressed = errors.New("track already compressed enough")
)

func unavailable(cause error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, cause)
}

func alreadyCompressed(detail string) error {
	return fmt.Errorf("%w: %s", ErrAlreadyCompressed, detail)
}
