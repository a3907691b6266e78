package simplex

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTolerance indicates a negative or NaN tolerance.
	ErrTolerance = errors.New("simplex: tolerance must be a nonnegative number")
	// ErrInternal indicates a pivot rejected by the tableau, which the
	// selection rules never produce on a valid model.
	ErrInternal = errors.New("simplex: internal pivot failure")
)

// InternalError is a pivot rejected by the tableau during Solve. It
// matches both ErrInternal and the tableau error it wraps.
type InternalError struct {
	Iteration int
	Err       error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%v: iteration %d: %v", ErrInternal, e.Iteration, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

func (e *InternalError) Is(target error) bool { return target == ErrInternal }
