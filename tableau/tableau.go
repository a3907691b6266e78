// Package tableau holds the dense simplex tableau and its pivot step.
package tableau

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"q.log/tabsimplex/model"
)

// Tableau is the dense simplex dictionary of a model with one slack per
// constraint.
//
// Columns are identified by a fixed integer id: decision variables
// 0..n-1, slacks n..n+m-1 and the value column n+m. Row 0 is the
// objective row; row i > 0 holds the variable basis[i-1].
type Tableau struct {
	data  *mat.Dense
	basis []int

	n, m int
}

// New builds the initial tableau of m, with every slack basic in its own row.
// The model is not validated here; callers run model.Validate first.
func New(m *model.Model) (*Tableau, error) {
	if m.NumCols == 0 {
		return nil, model.ErrEmpty
	}
	if r, c := m.C.Dims(); r != 1 || c != m.NumCols {
		return nil, errors.Wrapf(model.ErrDimension, "c is %dx%d, want 1x%d", r, c, m.NumCols)
	}

	n, rows := m.NumCols, m.NumRows
	t := &Tableau{
		data:  mat.NewDense(rows+1, n+rows+1, nil),
		basis: make([]int, rows),
		n:     n,
		m:     rows,
	}

	for j := range n {
		t.data.Set(0, j, -m.C.At(0, j))
	}
	for i := range rows {
		for j := range n {
			t.data.Set(i+1, j, m.A.At(i, j))
		}
		t.data.Set(i+1, n+i, 1)
		t.data.Set(i+1, n+rows, m.B.At(i, 0))
		t.basis[i] = n + i
	}

	return t, nil
}

// NumDecision returns the number of decision variables.
func (t *Tableau) NumDecision() int { return t.n }

// NumSlack returns the number of slack variables, i.e. constraints.
func (t *Tableau) NumSlack() int { return t.m }

// Rows returns the number of physical rows, objective row included.
func (t *Tableau) Rows() int { return t.m + 1 }

// Cols returns the number of physical columns, value column included.
func (t *Tableau) Cols() int { return t.n + t.m + 1 }

// ValueColumn returns the id of the right-hand side column.
func (t *Tableau) ValueColumn() int { return t.n + t.m }

// At returns the coefficient at a physical row and column id.
func (t *Tableau) At(row, col int) float64 {
	return t.data.At(row, col)
}

// Label returns the name of a column id: x1.., s1.. or v.
func (t *Tableau) Label(col int) string {
	switch {
	case col < t.n:
		return model.DecisionName(col)
	case col < t.n+t.m:
		return model.SlackName(col - t.n)
	case col == t.n+t.m:
		return model.ValueName
	}
	panic("tableau: column out of range")
}

// RowLabel returns the name of the variable basic in a physical row, or z
// for the objective row.
func (t *Tableau) RowLabel(row int) string {
	if row == 0 {
		return model.ObjectiveName
	}
	return t.Label(t.basis[row-1])
}

// BasicIn returns the variable id basic in a non-objective row.
func (t *Tableau) BasicIn(row int) int {
	return t.basis[row-1]
}

// RowOf returns the physical row in which variable col is basic, or -1
// when it is nonbasic.
func (t *Tableau) RowOf(col int) int {
	for i, v := range t.basis {
		if v == col {
			return i + 1
		}
	}
	return -1
}

// ReducedCost returns the objective row entry of a column.
func (t *Tableau) ReducedCost(col int) float64 {
	return t.data.At(0, col)
}

// Pivot makes enter basic in the row where leave is currently basic,
// using Gauss-Jordan elimination on the enter column.
func (t *Tableau) Pivot(enter, leave int) error {
	if enter < 0 || enter >= t.n+t.m {
		return errors.Wrapf(ErrUnknownVariable, "entering column %d", enter)
	}
	if leave < 0 || leave >= t.n+t.m {
		return errors.Wrapf(ErrUnknownVariable, "leaving column %d", leave)
	}
	row := t.RowOf(leave)
	if row < 0 {
		return errors.Wrapf(ErrNotBasic, "%s", t.Label(leave))
	}
	p := t.data.At(row, enter)
	if p == 0 {
		return errors.Wrapf(ErrZeroPivot, "%s enters, %s leaves", t.Label(enter), t.Label(leave))
	}

	t.basis[row-1] = enter

	pivotRow := t.data.RawRowView(row)
	floats.Scale(1/p, pivotRow)
	// 1/p may round; the pivot entry must be exactly 1.
	pivotRow[enter] = 1

	for r := 0; r < t.Rows(); r++ {
		if r == row {
			continue
		}
		other := t.data.RawRowView(r)
		coef := other[enter]
		if coef == 0 {
			continue
		}
		floats.AddScaled(other, -coef, pivotRow)
		other[enter] = 0
	}
	return nil
}

// Objective returns the current objective value.
func (t *Tableau) Objective() float64 {
	return t.data.At(0, t.ValueColumn())
}

// Assignment returns the value of every decision variable. Nonbasic
// variables are reported as 0.
func (t *Tableau) Assignment() map[string]float64 {
	ans := make(map[string]float64, t.n)
	for j := range t.n {
		ans[model.DecisionName(j)] = 0
	}
	for i, v := range t.basis {
		if v < t.n {
			ans[model.DecisionName(v)] = t.data.At(i+1, t.ValueColumn())
		}
	}
	return ans
}

// Variables returns the decision variables in column order.
func (t *Tableau) Variables() []model.Variable {
	vars := make([]model.Variable, t.n)
	for j := range t.n {
		vars[j] = model.Variable{Name: model.DecisionName(j)}
		if row := t.RowOf(j); row > 0 {
			vars[j].Value = t.data.At(row, t.ValueColumn())
			vars[j].IsBasic = true
		}
	}
	return vars
}

// CheckBasis verifies that every basic column is the unit vector of its
// row, within tol.
func (t *Tableau) CheckBasis(tol float64) error {
	seen := make(map[int]bool, t.m)
	for i, v := range t.basis {
		if seen[v] {
			return errors.Wrapf(ErrBrokenBasis, "%s is basic in two rows", t.Label(v))
		}
		seen[v] = true
		for r := 0; r < t.Rows(); r++ {
			want := 0.0
			if r == i+1 {
				want = 1
			}
			if math.Abs(t.data.At(r, v)-want) > tol {
				return errors.Wrapf(ErrBrokenBasis, "column %s at row %d is %v", t.Label(v), r, t.data.At(r, v))
			}
		}
	}
	return nil
}

// CheckFeasible verifies that no basic variable is below -tol.
func (t *Tableau) CheckFeasible(tol float64) error {
	for r := 1; r < t.Rows(); r++ {
		if v := t.data.At(r, t.ValueColumn()); v < -tol {
			return errors.Wrapf(ErrInfeasible, "%s = %v", t.RowLabel(r), v)
		}
	}
	return nil
}
