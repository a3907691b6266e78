package simplex

import (
	"math"

	"q.log/tabsimplex/tableau"
)

// State is the outcome of one selection round.
type State int

const (
	InProgress State = iota
	Finished
	Unbound
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	case Unbound:
		return "unbounded"
	}
	return "unknown"
}

// Rule decides what happens when no decision column improves the objective.
type Rule int

const (
	// LegacyRule reports an unbounded problem when, with no improving
	// column left, the decision reduced costs mix exact zeros with
	// positive values. Otherwise it reports optimality.
	LegacyRule Rule = iota
	// StandardRule always reports optimality when no column improves;
	// unboundedness is only detected by an empty ratio test.
	StandardRule
)

func (r Rule) String() string {
	switch r {
	case LegacyRule:
		return "legacy"
	case StandardRule:
		return "standard"
	}
	return "unknown"
}

// Step is the pivot chosen by Select. Enter and Leave are column ids and
// are only meaningful while State is InProgress.
type Step struct {
	Enter    int
	Leave    int
	LeaveRow int
	State    State
}

// Select applies Dantzig's rule to the decision columns: the most negative
// reduced cost below -tol enters, first occurrence winning ties. The
// leaving row is chosen by the minimum ratio test over rows with a
// strictly positive entry, first row winning ties.
func Select(t *tableau.Tableau, tol float64, rule Rule) Step {
	minCost := -tol
	enter := -1
	for j := range t.NumDecision() {
		if rc := t.ReducedCost(j); rc < minCost {
			minCost = rc
			enter = j
		}
	}

	if enter < 0 {
		if rule == LegacyRule && zeroAndPositive(t) {
			return Step{Enter: -1, Leave: -1, LeaveRow: -1, State: Unbound}
		}
		return Step{Enter: -1, Leave: -1, LeaveRow: -1, State: Finished}
	}

	minRatio := math.MaxFloat64
	leaveRow := -1
	for r := 1; r < t.Rows(); r++ {
		entering := t.At(r, enter)
		if entering <= 0 {
			continue
		}
		if ratio := t.At(r, t.ValueColumn()) / entering; ratio < minRatio {
			minRatio = ratio
			leaveRow = r
		}
	}
	if leaveRow < 0 {
		return Step{Enter: enter, Leave: -1, LeaveRow: -1, State: Unbound}
	}

	return Step{Enter: enter, Leave: t.BasicIn(leaveRow), LeaveRow: leaveRow, State: InProgress}
}

func zeroAndPositive(t *tableau.Tableau) bool {
	zero, positive := false, false
	for j := range t.NumDecision() {
		rc := t.ReducedCost(j)
		if rc == 0 {
			zero = true
		} else if rc > 0 {
			positive = true
		}
	}
	return zero && positive
}
