package greedy

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidParams is returned when scoring parameters, configuration or inputs violate the
// alignment contract. No work is performed when it is returned.
var ErrInvalidParams error = errors.New("invalid greedy alignment parameters")

// ErrSpaceExhausted is the reason carried by an AbortError when a wavefront round needs more
// diagonal cells than Config.MaxSpace allows
var ErrSpaceExhausted error = errors.New("greedy alignment exceeded its diagonal space")

// ErrContextDestroyed is returned when an alignment is requested from a destroyed Context
var ErrContextDestroyed error = errors.New("greedy alignment context has been destroyed")

// AbortError is returned when an alignment stops before completing. The coordinates and score
// describe the best point found before the abort; no edit script is produced. The Context that
// returned the error remains usable.
type AbortError struct {
	// Reason wraps ErrSpaceExhausted, or is the error of the context.Context that was cancelled
	Reason error

	End1  int
	End2  int
	Score int
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("greedy alignment aborted with best point (%d, %d) score %d: %v", e.End1, e.End2, e.Score, e.Reason)
}

func (e *AbortError) Unwrap() error {
	return e.Reason
}
