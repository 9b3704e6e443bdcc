// Package relax_test validates the bundled McCormick LP oracle.
// Focus:
//  1. Exactness on instances where the LP relaxation is tight.
//  2. The lower-bound contract against the exhaustive minimum on random
//     instances (the only property the engine actually relies on).
//  3. Shape of the reported fractional point and branch candidate.
//  4. Strict sentinels on degenerate inputs.
package relax_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/biqopt/qubo"
	"github.com/katalvlaran/biqopt/relax"
)

const lpTol = 1e-6

// mkProblem builds a Problem from a row-major square table.
func mkProblem(t *testing.T, q [][]float64, p []float64, r float64) *qubo.Problem {
	t.Helper()
	n := len(q)
	flat := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		flat = append(flat, q[i]...)
	}
	prob, err := qubo.NewProblemDense(mat.NewDense(n, n, flat), p, r)
	require.NoError(t, err)

	return prob
}

// randProblem builds a deterministic random symmetric instance.
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
	require.NoError(t, err)

	return prob
}

func TestLPOracle_PositiveCouplingTight(t *testing.T) {
	// f(x) = 2·x1·x2: binary minimum 0; the McCormick LP attains it.
	p := mkProblem(t, [][]float64{
		{0, 1},
		{1, 0},
	}, []float64{0, 0}, 0)

	rel, err := relax.NewLPOracle().SolveRelaxation(p)
	require.NoError(t, err)
	require.InDelta(t, 0, rel.Objective, lpTol)
	require.Len(t, rel.X, 2)
	for _, v := range rel.X {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
	require.Contains(t, []int{0, 1}, rel.Branch)
}

func TestLPOracle_NegativeCouplingTight(t *testing.T) {
	// f(x) = −2·x1·x2: binary minimum −2 at (1,1); the LP pushes the product
	// variable up to min(x1, x2) and lands on the same vertex.
	p := mkProblem(t, [][]float64{
		{0, -1},
		{-1, 0},
	}, []float64{0, 0}, 0)

	rel, err := relax.NewLPOracle().SolveRelaxation(p)
	require.NoError(t, err)
	require.InDelta(t, -2, rel.Objective, lpTol)
	require.InDelta(t, 1, rel.X[0], lpTol)
	require.InDelta(t, 1, rel.X[1], lpTol)
}

func TestLPOracle_LinearOnly(t *testing.T) {
	// Diagonal-only Q folds into the linear part: f = 2·x1 − 3·x2 + 1,
	// minimum −2 at (0,1). Exercises the m = 0 (no couplings) path.
	p := mkProblem(t, [][]float64{
		{2, 0},
		{0, -3},
	}, []float64{0, 0}, 1)

	rel, err := relax.NewLPOracle().SolveRelaxation(p)
	require.NoError(t, err)
	require.InDelta(t, -2, rel.Objective, lpTol)
	require.InDelta(t, 0, rel.X[0], lpTol)
	require.InDelta(t, 1, rel.X[1], lpTol)
}

func TestLPOracle_LowerBoundsBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	oracle := relax.NewLPOracle()

	for trial := 0; trial < 8; trial++ {
		p := randProblem(t, rng, 4+trial%3, 2)

		rel, err := oracle.SolveRelaxation(p)
		require.NoError(t, err)

		exact, _, err := qubo.BruteForce(p)
		require.NoError(t, err)

		require.LessOrEqual(t, rel.Objective, exact+lpTol,
			"LP bound must never exceed the exhaustive minimum")
		require.Len(t, rel.X, p.Dim())
		require.GreaterOrEqual(t, rel.Branch, 0)
		require.Less(t, rel.Branch, p.Dim())
	}
}

func TestLPOracle_DimensionOneHasNoBranch(t *testing.T) {
	p, err := qubo.NewProblem(mat.NewSymDense(1, []float64{2}), []float64{-3}, 1)
	require.NoError(t, err)

	rel, err := relax.NewLPOracle().SolveRelaxation(p)
	require.NoError(t, err)
	// min over x ∈ [0,1] of (2−3)·x + 1 = 0 at x = 1.
	require.InDelta(t, 0, rel.Objective, lpTol)
	require.Equal(t, relax.NoBranch, rel.Branch)
}

func TestLPOracle_StrictSentinels(t *testing.T) {
	_, err := relax.NewLPOracle().SolveRelaxation(nil)
	require.ErrorIs(t, err, qubo.ErrNilProblem)
}
