// Package mps reads fixed-format MPS files through GLPK.
//
// Only models the tableau method can start from the slack basis are
// accepted: every row must be a <= row with a nonnegative rhs, and
// columns may carry upper bounds, which become extra <= rows.
package mps

import (
	"math"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"q.log/tabsimplex/model"
)

// ErrUnsupported indicates a row or bound that needs more than slack variables.
var ErrUnsupported = errors.New("mps: unsupported constraint")

// ReadFile returns the model stored in an MPS file.
func ReadFile(filename string) (*model.Model, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, filename); err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}

	m := model.NewModel(0, lp.NumCols())
	m.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	m.Minimize = lp.ObjDir() == glpk.MIN

	//populate obj function
	sign := 1.0
	if m.Minimize {
		sign = -1
	}
	cVec := make([]float64, 0, lp.NumCols())
	for c := range lp.NumCols() {
		cVec = append(cVec, sign*lp.ObjCoef(c+1))
	}
	if err := m.SetC(cVec); err != nil {
		return nil, err
	}

	//populate constraints
	for r := range lp.NumRows() {
		if lp.RowLB(r+1) != -math.MaxFloat64 {
			return nil, errors.Wrapf(ErrUnsupported, "row %d has a lower bound", r+1)
		}
		rowVec := make([]float64, lp.NumCols())
		idxs, row := lp.MatRow(r + 1)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = row[i]
		}
		if err := addRow(m, rowVec, lp.RowUB(r+1)); err != nil {
			return nil, errors.Wrapf(err, "row %d", r+1)
		}
	}

	// x >= 0 is implicit; finite upper bounds become rows.
	for c := range lp.NumCols() {
		if lb := lp.ColLB(c + 1); lb != 0 {
			return nil, errors.Wrapf(ErrUnsupported, "column %d has lower bound %v", c+1, lb)
		}
		ub := lp.ColUB(c + 1)
		if ub == math.MaxFloat64 {
			continue
		}
		rowVec := make([]float64, lp.NumCols())
		rowVec[c] = 1
		if err := addRow(m, rowVec, ub); err != nil {
			return nil, errors.Wrapf(err, "column %d", c+1)
		}
	}

	return m, nil
}

func addRow(m *model.Model, rowVec []float64, rhs float64) error {
	if rhs < 0 {
		return errors.Wrapf(ErrUnsupported, "negative rhs %v", rhs)
	}
	return m.AddRow(rowVec, rhs)
}
