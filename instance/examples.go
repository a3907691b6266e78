package instance

import (
	"github.com/pkg/errors"
	"q.log/tabsimplex/model"
)

type example struct {
	name      string
	c         []float64
	a         [][]float64
	b         []float64
	tolerance *float64
}

func tolerance(v float64) *float64 { return &v }

var examples = []example{
	{
		name: "test-1",
		c:    []float64{3, 4},
		a: [][]float64{
			{1, 2},
			{2, 1},
		},
		b: []float64{10, 12},
	},
	{
		name: "test-2",
		c:    []float64{3, 2, 1},
		a: [][]float64{
			{1, 2, 1},
			{4, 0, 1},
			{2, 3, 0},
		},
		b: []float64{12, 16, 10},
	},
	{
		name: "test-3",
		c:    []float64{3, 4, 2},
		a: [][]float64{
			{1, 1, 0},
			{2, 1, 1},
			{1, 0, 1},
			{0, 1, 2},
		},
		b: []float64{50, 80, 40, 30},
	},
	{
		name: "test-4",
		c:    []float64{4, 3, 5},
		a: [][]float64{
			{1, 2, 1}, // x1 + 2x2 + x3 <= 100
			{3, 2, 0}, // 3x1 + 2x2 <= 120
			{0, 1, 3}, // x2 + 3x3 <= 60
			{2, 0, 1}, // 2x1 + x3 <= 80
		},
		b: []float64{100, 120, 60, 80},
	},
	{
		name: "test-5",
		c:    []float64{12, 15, 10},
		a: [][]float64{
			{2, 3, 1},
			{4, 1, 2},
			{3, 2, 5},
		},
		b:         []float64{30, 40, 60},
		tolerance: tolerance(0.01),
	},
	{
		// x1 + x2 <= 4 alone; the second bound is missing on purpose.
		name: "test-unbound",
		c:    []float64{3, 2},
		a: [][]float64{
			{1, 1},
		},
		b: []float64{4},
	},
}

// Examples returns the built-in example problems in a fixed order.
func Examples() []*Problem {
	out := make([]*Problem, 0, len(examples))
	for _, ex := range examples {
		out = append(out, ex.problem())
	}
	return out
}

// Example returns the built-in example with the given name.
func Example(name string) (*Problem, error) {
	for _, ex := range examples {
		if ex.name == name {
			return ex.problem(), nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownExample, "%q", name)
}

func (ex example) problem() *Problem {
	m, err := model.FromSlices(ex.c, ex.a, ex.b)
	if err != nil {
		panic(err)
	}
	m.Name = ex.name
	p := &Problem{Model: m}
	if ex.tolerance != nil {
		p.Tolerance = tolerance(*ex.tolerance)
	}
	return p
}
