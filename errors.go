package tonecurve

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a tridiagonal system has a zero pivot.
	// For a spline this happens when two knots share the same x.
	ErrSingular = errors.New("singular tridiagonal system")

	// ErrEmpty is returned when evaluating a spline with fewer than two knots.
	ErrEmpty = errors.New("spline has fewer than two knots")

	// ErrIndex is matched by every [*IndexError].
	ErrIndex = errors.New("knot index out of range")

	// ErrNoInverse is returned by [Spline.Invert] when the value isn't
	// bracketed by the curve's end points.
	ErrNoInverse = errors.New("value outside of curve's range")
)

// IndexError reports an out-of-range knot index passed to [Spline.Move],
// [Spline.Delete], or [Spline.Knot].
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: knot index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

// Is reports whether target is [ErrIndex] or another *IndexError.
func (e *IndexError) Is(target error) bool {
	if target == ErrIndex {
		return true
	}
	_, ok := target.(*IndexError)
	return ok
}

// SolveError reports a spline whose curvature couldn't be computed.
// Knot is the index of the first knot of the zero-width interval, or -1 if
// the solver failed for another reason.
type SolveError struct {
	Knot int
	Err  error
}

func (e *SolveError) Error() string {
	if e.Knot >= 0 {
		return fmt.Sprintf("knots %d and %d share x: %s", e.Knot, e.Knot+1, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, usually [ErrSingular].
func (e *SolveError) Unwrap() error { return e.Err }
