package model

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// ObjectiveName labels the objective row of a tableau.
	ObjectiveName = "z"
	// ValueName labels the right-hand side column of a tableau.
	ValueName = "v"
)

// Variable is the final state of one decision variable.
type Variable struct {
	Name    string
	Value   float64
	IsBasic bool
}

// Model is a linear program in the form
//
//	max c'x  s.t.  Ax <= b, x >= 0
type Model struct {
	Name string

	//C objective function coefficients
	C *mat.Dense

	//A constraints matrix
	A *mat.Dense

	//B constraints rhs
	B *mat.Dense

	// Minimize marks a model read from a minimization source. C then
	// holds the negated costs and solvers report -max. The legacy
	// termination rule reports such models unbounded whenever a cost is
	// zero, so solvers default to the standard rule for them.
	Minimize bool

	NumRows int
	NumCols int
}

func NewModel(numRows, numCols int) *Model {
	m := &Model{
		NumRows: numRows,
		NumCols: numCols,
	}
	// mat panics on zero-sized matrices, so empty dimensions stay nil.
	if numCols > 0 {
		m.C = mat.NewDense(1, numCols, nil)
	}
	if numRows > 0 && numCols > 0 {
		m.A = mat.NewDense(numRows, numCols, nil)
		m.B = mat.NewDense(numRows, 1, nil)
	}
	return m
}

// FromSlices builds a model from plain slices, checking every dimension.
func FromSlices(c []float64, a [][]float64, b []float64) (*Model, error) {
	if len(c) == 0 {
		return nil, ErrEmpty
	}
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrDimension, "%d constraint rows but %d rhs values", len(a), len(b))
	}

	m := NewModel(len(a), len(c))
	if err := m.SetC(c); err != nil {
		return nil, err
	}

	aVec := make([]float64, 0, len(a)*len(c))
	for i, row := range a {
		if len(row) != len(c) {
			return nil, errors.Wrapf(ErrDimension, "constraint %d has %d coefficients, want %d", i+1, len(row), len(c))
		}
		aVec = append(aVec, row...)
	}
	if len(a) == 0 {
		return m, nil
	}
	if err := m.SetA(aVec); err != nil {
		return nil, err
	}
	if err := m.SetB(b); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) SetC(cVec []float64) error {
	if len(cVec) != m.NumCols {
		return errors.Wrap(ErrDimension, "mismatch number of variables")
	}

	m.C = mat.NewDense(1, m.NumCols, append([]float64(nil), cVec...))

	return nil
}

// SetA sets the constraint matrix from row-major data.
func (m *Model) SetA(aVec []float64) error {
	if len(aVec) != m.NumCols*m.NumRows {
		return errors.Wrap(ErrDimension, "mismatch number of variables and/or constraints")
	}

	m.A = mat.NewDense(m.NumRows, m.NumCols, append([]float64(nil), aVec...))

	return nil
}

func (m *Model) SetB(bVec []float64) error {
	if len(bVec) != m.NumRows {
		return errors.Wrap(ErrDimension, "mismatch number of constraints")
	}

	m.B = mat.NewDense(m.NumRows, 1, append([]float64(nil), bVec...))

	return nil
}

// AddRow appends the constraint rVec'x <= rhs.
func (m *Model) AddRow(rVec []float64, rhs float64) error {
	if len(rVec) != m.NumCols {
		return errors.Wrap(ErrDimension, "mismatch number of columns, i.e. wrong len of rVec")
	}

	if m.NumRows == 0 || m.A == nil {
		m.A = mat.NewDense(1, m.NumCols, append([]float64(nil), rVec...))
		m.B = mat.NewDense(1, 1, []float64{rhs})
		m.NumRows++
		return nil
	}

	m.A = mat.DenseCopyOf(m.A.Grow(1, 0))
	m.A.SetRow(m.NumRows, rVec)

	m.B = mat.DenseCopyOf(m.B.Grow(1, 0))
	m.B.Set(m.NumRows, 0, rhs)

	m.NumRows++
	return nil
}

// Validate reports whether the model is in the form the tableau method
// accepts: consistent shapes, finite entries and a nonnegative rhs.
func (m *Model) Validate() error {
	if m.NumCols == 0 {
		return ErrEmpty
	}
	if r, c := m.C.Dims(); r != 1 || c != m.NumCols {
		return errors.Wrapf(ErrDimension, "c is %dx%d, want 1x%d", r, c, m.NumCols)
	}
	if !finite(m.C.RawRowView(0)) {
		return errors.Wrap(ErrNotFinite, "objective")
	}
	if m.NumRows == 0 {
		return nil
	}
	if r, c := m.A.Dims(); r != m.NumRows || c != m.NumCols {
		return errors.Wrapf(ErrDimension, "A is %dx%d, want %dx%d", r, c, m.NumRows, m.NumCols)
	}
	if r, c := m.B.Dims(); r != m.NumRows || c != 1 {
		return errors.Wrapf(ErrDimension, "b is %dx%d, want %dx1", r, c, m.NumRows)
	}
	for i := range m.NumRows {
		if !finite(m.A.RawRowView(i)) {
			return errors.Wrapf(ErrNotFinite, "constraint %d", i+1)
		}
		rhs := m.B.At(i, 0)
		if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
			return errors.Wrapf(ErrNotFinite, "rhs of constraint %d", i+1)
		}
		if rhs < 0 {
			return errors.Wrapf(ErrNegativeRHS, "constraint %d has rhs %v", i+1, rhs)
		}
	}
	return nil
}

func finite(v []float64) bool {
	if floats.HasNaN(v) {
		return false
	}
	for _, x := range v {
		if math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// DecisionName returns the label of decision variable j (0-based).
func DecisionName(j int) string {
	return fmt.Sprintf("x%d", j+1)
}

// SlackName returns the label of the slack variable of constraint i (0-based).
func SlackName(i int) string {
	return fmt.Sprintf("s%d", i+1)
}
