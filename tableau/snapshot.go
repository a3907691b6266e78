package tableau

import "gonum.org/v1/gonum/mat"

// Snapshot is an immutable copy of a tableau, detached from later pivots.
type Snapshot struct {
	// Columns holds the column labels in id order, value column last.
	Columns []string
	// Rows holds the row labels in physical order, objective row first.
	Rows []string
	Data *mat.Dense
}

// Snapshot copies the current state of t.
func (t *Tableau) Snapshot() Snapshot {
	s := Snapshot{
		Columns: make([]string, t.Cols()),
		Rows:    make([]string, t.Rows()),
		Data:    mat.DenseCopyOf(t.data),
	}
	for c := range s.Columns {
		s.Columns[c] = t.Label(c)
	}
	for r := range s.Rows {
		s.Rows[r] = t.RowLabel(r)
	}
	return s
}
