package bnb_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/biqopt/bnb"
	"github.com/katalvlaran/biqopt/qubo"
	"github.com/katalvlaran/biqopt/relax"
)

// ExampleSolve minimizes f(x) = 2·x1·x2 over binary x with the bundled LP
// oracle. The minimum is 0, achieved whenever at least one variable is 0.
func ExampleSolve() {
	q := mat.NewSymDense(2, []float64{
		0, 1,
		1, 0,
	})
	p, err := qubo.NewProblem(q, []float64{0, 0}, 0)
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	opts := bnb.DefaultOptions()
	opts.GapTolerance = 1e-6

	res, err := bnb.Solve(p, relax.NewLPOracle(), opts)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("value: %.0f\n", res.Value)
	fmt.Printf("product: %d\n", res.Assignment[0]*res.Assignment[1])
	fmt.Printf("optimal: %v\n", res.Optimal)
	// Output:
	// value: 0
	// product: 0
	// optimal: true
}
