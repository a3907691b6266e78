package tableau

import "github.com/pkg/errors"

var (
	// ErrZeroPivot indicates a pivot on a zero element; selection never produces one.
	ErrZeroPivot = errors.New("tableau: cannot pivot on a zero element")
	// ErrUnknownVariable indicates a column id outside the variable range.
	ErrUnknownVariable = errors.New("tableau: unknown variable")
	// ErrNotBasic indicates a leaving variable that is not in the basis.
	ErrNotBasic = errors.New("tableau: leaving variable is not basic")
	// ErrBrokenBasis indicates a basic column that is not a unit vector.
	ErrBrokenBasis = errors.New("tableau: basis columns are not the identity")
	// ErrInfeasible indicates a negative basic variable.
	ErrInfeasible = errors.New("tableau: basic solution is infeasible")
)
