// Package render prints linear programs, simplex tableaus and solver
// results in a human-readable form. It only reads solver state.
package render

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
	"q.log/tabsimplex/model"
	"q.log/tabsimplex/simplex"
	"q.log/tabsimplex/tableau"
)

// Problem writes the statement of m:
//
//	max z = (3) * x1 + (4) * x2
//	subject to the constraints:
//	1) (1) * x1 + (2) * x2 <= 10
func Problem(w io.Writer, m *model.Model, tolerance float64, defaulted bool) {
	sense := "max"
	sign := 1.0
	if m.Minimize {
		sense, sign = "min", -1
	}
	fmt.Fprintf(w, "%s z = ", sense)
	for j := range m.NumCols {
		if j > 0 {
			fmt.Fprint(w, " + ")
		}
		fmt.Fprintf(w, "(%v) * %s", sign*m.C.At(0, j), model.DecisionName(j))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "subject to the constraints:")
	for i := range m.NumRows {
		fmt.Fprintf(w, "%d) ", i+1)
		first := true
		for j := range m.NumCols {
			a := m.A.At(i, j)
			if a == 0 {
				continue
			}
			if !first {
				fmt.Fprint(w, " + ")
			}
			first = false
			fmt.Fprintf(w, "(%v) * %s", a, model.DecisionName(j))
		}
		fmt.Fprintf(w, " <= %v\n", m.B.At(i, 0))
	}

	if defaulted {
		fmt.Fprintf(w, "With precision %v (default)\n", tolerance)
	} else {
		fmt.Fprintf(w, "With precision %v\n", tolerance)
	}
}

// Matrices dumps c, A and b.
func Matrices(w io.Writer, m *model.Model) {
	fmt.Fprintf(w, "c = %v\n", mat.Formatted(m.C, mat.Prefix("    "), mat.Squeeze()))
	if m.NumRows == 0 {
		return
	}
	fmt.Fprintf(w, "A = %v\n", mat.Formatted(m.A, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(w, "b = %v\n", mat.Formatted(m.B, mat.Prefix("    "), mat.Squeeze()))
}

// Tableau writes s as a table with the value column last.
func Tableau(w io.Writer, s tableau.Snapshot) {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', tabwriter.AlignRight)
	for _, c := range s.Columns {
		name := c
		if c == model.ValueName {
			name = "value"
		}
		fmt.Fprintf(tw, "\t%s", name)
	}
	fmt.Fprintln(tw, "\t")
	for r, label := range s.Rows {
		fmt.Fprint(tw, label)
		for c := range s.Columns {
			fmt.Fprintf(tw, "\t%.2f", s.Data.At(r, c))
		}
		fmt.Fprintln(tw, "\t")
	}
	tw.Flush()
}

// Result writes the outcome of a solve.
func Result(w io.Writer, res *simplex.Result) {
	switch res.Status {
	case simplex.Solved:
		fmt.Fprintln(w, "Solved!")
		extremum := "maximum"
		if res.Minimize {
			extremum = "minimum"
		}
		fmt.Fprintf(w, "The %s is %.2f and the solution is:\n", extremum, res.Objective)
		names := make([]string, 0, len(res.Assignment))
		for name := range res.Assignment {
			names = append(names, name)
		}
		slices.SortFunc(names, byVariableIndex)
		for _, name := range names {
			fmt.Fprintf(w, "%s = %.2f\n", name, res.Assignment[name])
		}
	case simplex.Unbounded:
		fmt.Fprintln(w, "Could not solve the problem since it is unbounded!")
	case simplex.NotConverged:
		fmt.Fprintf(w, "Did not converge after %d iterations.\n", res.Iterations)
	}
}

// byVariableIndex orders x2 before x10.
func byVariableIndex(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Tracer is a simplex.Observer that prints every tableau it sees.
type Tracer struct {
	W io.Writer
}

func (t Tracer) Observe(e simplex.Event) {
	if e.Iteration == 0 {
		fmt.Fprintln(t.W, "Initial table:")
	} else {
		fmt.Fprintln(t.W, "-----------")
		fmt.Fprintf(t.W, "Iteration #%d:\n", e.Iteration)
		fmt.Fprintf(t.W, "%s enters, %s leaves!\n", e.Enter, e.Leave)
	}
	Tableau(t.W, e.Tableau)
}
