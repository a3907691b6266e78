package simplex

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTolerance is the magnitude a reduced cost must exceed to
	// count as improving.
	DefaultTolerance = 0.1
	// DefaultMaxIterations bounds the number of pivots of one solve.
	DefaultMaxIterations = 10000
)

// Option configures Solve.
type Option func(*config)

type config struct {
	tolerance     float64
	maxIterations int
	rule          Rule
	ruleSet       bool
	observers     []Observer
	log           *logrus.Entry
}

func defaultConfig() *config {
	return &config{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		rule:          LegacyRule,
		log:           logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithTolerance sets the reduced cost tolerance.
func WithTolerance(eps float64) Option {
	return func(c *config) {
		c.tolerance = eps
	}
}

// WithMaxIterations sets the pivot ceiling. Values below 1 disable it.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		c.maxIterations = n
	}
}

// WithRule selects the termination rule. Without it, maximization models
// use LegacyRule and minimization models use StandardRule.
func WithRule(r Rule) Option {
	return func(c *config) {
		c.rule = r
		c.ruleSet = true
	}
}

// WithObserver registers an observer of the initial tableau and every pivot.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observers = append(c.observers, o)
	}
}

// WithLogger sets the logger used for per-iteration debug output.
func WithLogger(log *logrus.Entry) Option {
	return func(c *config) {
		c.log = log
	}
}
