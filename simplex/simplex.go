package simplex

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"q.log/tabsimplex/model"
	"q.log/tabsimplex/tableau"
)

// Status is the terminal outcome of a solve.
type Status int

const (
	Solved Status = iota
	Unbounded
	NotConverged
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Unbounded:
		return "unbounded"
	case NotConverged:
		return "not converged"
	}
	return "unknown"
}

// Result is the outcome of Solve. Objective, Assignment and Variables are
// only set when Status is Solved.
type Result struct {
	Status     Status
	Objective  float64
	Assignment map[string]float64
	Variables  []model.Variable
	Iterations int
	// Minimize is copied from the model; Objective is then the minimum.
	Minimize bool
}

// Event describes the tableau after a pivot. The initial tableau is
// reported with Iteration 0 and empty Enter/Leave.
type Event struct {
	Iteration int
	Enter     string
	Leave     string
	Tableau   tableau.Snapshot
}

// Observer receives solver events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// Solve maximizes m.C'x subject to m.A x <= m.B, x >= 0 with the tableau
// simplex method, starting from the all-slack basis.
//
// Unbounded problems and exhausted iteration budgets are reported through
// Result.Status. Errors are returned for invalid models or options and
// for internal pivot failures.
func Solve(m *model.Model, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if math.IsNaN(cfg.tolerance) || cfg.tolerance < 0 {
		return nil, errors.Wrapf(ErrTolerance, "%v", cfg.tolerance)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid model %q", m.Name)
	}

	t, err := tableau.New(m)
	if err != nil {
		return nil, err
	}

	rule := cfg.rule
	if m.Minimize && !cfg.ruleSet {
		// The legacy rule misreads zero costs of a negated objective.
		rule = StandardRule
	}

	log := cfg.log.WithFields(logrus.Fields{
		"model":     m.Name,
		"tolerance": cfg.tolerance,
		"rule":      rule,
	})
	log.WithFields(logrus.Fields{
		"variables":   t.NumDecision(),
		"constraints": t.NumSlack(),
	}).Debug("initial tableau built")
	cfg.notify(0, "", "", t)

	iter := 0
	for {
		step := Select(t, cfg.tolerance, rule)
		if step.State == Unbound {
			log.WithField("iteration", iter).Debug("problem is unbounded")
			return &Result{Status: Unbounded, Iterations: iter}, nil
		}
		if step.State == Finished {
			break
		}
		if cfg.maxIterations > 0 && iter == cfg.maxIterations {
			log.WithField("iteration", iter).Warn("iteration limit reached")
			return &Result{Status: NotConverged, Iterations: iter}, nil
		}

		enter, leave := t.Label(step.Enter), t.Label(step.Leave)
		if err := t.Pivot(step.Enter, step.Leave); err != nil {
			return nil, &InternalError{Iteration: iter + 1, Err: err}
		}
		iter++

		log.WithFields(logrus.Fields{
			"iteration": iter,
			"enter":     enter,
			"leave":     leave,
			"objective": t.Objective(),
		}).Debug("pivot")
		if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
			checkInvariants(log, t)
		}
		cfg.notify(iter, enter, leave, t)
	}

	res := &Result{
		Status:     Solved,
		Objective:  t.Objective(),
		Assignment: t.Assignment(),
		Variables:  t.Variables(),
		Iterations: iter,
		Minimize:   m.Minimize,
	}
	if m.Minimize {
		// 0 - x keeps a zero optimum at +0.
		res.Objective = 0 - res.Objective
	}
	log.WithFields(logrus.Fields{
		"iterations": iter,
		"objective":  res.Objective,
	}).Debug("solved")
	return res, nil
}

// SolveDense builds a model from plain slices and solves it.
func SolveDense(c []float64, a [][]float64, b []float64, opts ...Option) (*Result, error) {
	m, err := model.FromSlices(c, a, b)
	if err != nil {
		return nil, err
	}
	return Solve(m, opts...)
}

// invariantTol bounds the rounding drift tolerated by checkInvariants.
const invariantTol = 1e-9

func checkInvariants(log *logrus.Entry, t *tableau.Tableau) {
	if err := t.CheckBasis(invariantTol); err != nil {
		log.WithError(err).Warn("basis invariant violated")
	}
	if err := t.CheckFeasible(invariantTol); err != nil {
		log.WithError(err).Warn("feasibility invariant violated")
	}
}

// notify sends the state of t to every observer. The snapshot is only
// taken when someone listens.
func (c *config) notify(iter int, enter, leave string, t *tableau.Tableau) {
	if len(c.observers) == 0 {
		return
	}
	e := Event{Iteration: iter, Enter: enter, Leave: leave, Tableau: t.Snapshot()}
	for _, o := range c.observers {
		o.Observe(e)
	}
}
