// Package qubo_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating production functionality.
package qubo_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/biqopt/qubo"
)

const (
	// seedDet is the deterministic seed for all RNG-based instance builders.
	seedDet = int64(1)

	// epsTiny is the strict tolerance for exact algebraic identities.
	epsTiny = 1e-9
)

// mkProblem builds a Problem from a row-major square table, failing the test
// on any construction error.
func mkProblem(t *testing.T, q [][]float64, p []float64, r float64) *qubo.Problem {
	t.Helper()
	n := len(q)
	flat := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		if len(q[i]) != n {
			t.Fatalf("mkProblem: ragged row %d", i)
		}
		flat = append(flat, q[i]...)
	}
	prob, err := qubo.NewProblemDense(mat.NewDense(n, n, flat), p, r)
	if err != nil {
		t.Fatalf("mkProblem: %v", err)
	}

	return prob
}

// randProblem builds a dense symmetric random instance with entries in
// [-scale, scale), deterministic for a given rng.
func randProblem(t *testing.T, rng *rand.Rand, n int, scale float64) *qubo.Problem {
	t.Helper()
	q := mat.NewSymDense(n, nil)
	p := make([]float64, n)
	for i := 0; i < n; i++ {
		p[i] = scale * (2*rng.Float64() - 1)
		for j := i; j < n; j++ {
			q.SetSym(i, j, scale*(2*rng.Float64()-1))
		}
	}
	prob, err := qubo.NewProblem(q, p, scale*(2*rng.Float64()-1))
	if err != nil {
		t.Fatalf("randProblem: %v", err)
	}

	return prob
}

// Repeat runs fn n times; used for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts errors.Is(err, target).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// floatsClose checks absolute closeness of two float64 values.
func floatsClose(a, b, tol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= tol
}
