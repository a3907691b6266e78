package model

import "github.com/pkg/errors"

var (
	// ErrEmpty indicates a model without decision variables.
	ErrEmpty = errors.New("model: objective must have at least one coefficient")
	// ErrDimension indicates c, A and b do not agree in shape.
	ErrDimension = errors.New("model: dimension mismatch")
	// ErrNotFinite indicates a NaN or infinite coefficient.
	ErrNotFinite = errors.New("model: coefficients must be finite")
	// ErrNegativeRHS indicates a constraint whose slack cannot start in the basis.
	ErrNegativeRHS = errors.New("model: rhs must be nonnegative")
)
