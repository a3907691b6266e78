package simplex_test

import (
	"fmt"

	"q.log/tabsimplex/simplex"
)

func ExampleSolveDense() {
	res, err := simplex.SolveDense(
		[]float64{3, 4},
		[][]float64{
			{1, 2},
			{2, 1},
		},
		[]float64{10, 12},
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Status, res.Iterations)
	fmt.Printf("z = %.2f, x1 = %.2f, x2 = %.2f\n", res.Objective, res.Assignment["x1"], res.Assignment["x2"])
	// Output:
	// solved 2
	// z = 24.67, x1 = 4.67, x2 = 2.67
}

func ExampleWithRule() {
	c, a, b := []float64{3, 2}, [][]float64{{1, 1}}, []float64{4}

	legacy, _ := simplex.SolveDense(c, a, b)
	standard, _ := simplex.SolveDense(c, a, b, simplex.WithRule(simplex.StandardRule))

	fmt.Println(legacy.Status)
	fmt.Println(standard.Status, standard.Objective)
	// Output:
	// unbounded
	// solved 12
}
