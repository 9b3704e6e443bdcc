// Package relax - bundled LP lower-bound oracle (McCormick linearization).
//
// For a QUBO instance minimize xᵀQx + Pᵀx + R over {0,1}ⁿ, introduce one
// product variable y_ij per nonzero off-diagonal coupling (i < j) and relax:
//
//	minimize   Σ_i (Q_ii + P_i)·x_i + Σ_{i<j} 2·Q_ij·y_ij + R
//	subject to 0 ≤ x_i ≤ 1
//	           y_ij ≤ x_i,  y_ij ≤ x_j,  y_ij ≥ x_i + x_j − 1,  y_ij ≥ 0.
//
// On binary points y_ij = x_i·x_j is feasible and the objective coincides
// with the original (x_i² = x_i folds the diagonal into the linear part), so
// the LP optimum is a valid lower bound regardless of coupling signs.
//
// The LP is assembled in standard equality form (one slack per inequality)
// and handed to gonum's simplex, one call per node — the same per-node role
// lp.Simplex plays in LP-based Branch-and-Bound MILP solvers.

package relax

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/biqopt/qubo"
)

// LPOracle solves the McCormick LP relaxation of a QUBO instance with
// gonum's simplex. The zero value is usable; NewLPOracle returns defaults.
type LPOracle struct {
	// Tol is the simplex pivot tolerance; 0 selects gonum's default.
	Tol float64
}

// NewLPOracle returns an LPOracle with default tolerances.
func NewLPOracle() *LPOracle { return &LPOracle{} }

var _ Oracle = (*LPOracle)(nil)

// SolveRelaxation assembles and solves the McCormick LP for p.
//
// Errors: qubo.ErrNilProblem, qubo.ErrEmptyProblem, ErrInfeasible,
// ErrNotConverged (backend failures are wrapped, errors.Is still matches).
//
// Complexity: LP with 2n + 4m variables and n + 3m rows, m = #nonzero
// couplings; simplex-dominated.
func (o *LPOracle) SolveRelaxation(p *qubo.Problem) (Relaxation, error) {
	if p == nil {
		return Relaxation{}, qubo.ErrNilProblem
	}
	n := p.Dim()
	if n == 0 {
		return Relaxation{}, qubo.ErrEmptyProblem
	}

	var (
		q    = p.Q()
		lin  = p.P()
		rows [][2]int // product-variable index pairs (i, j), i < j
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if q.At(i, j) != 0 {
				rows = append(rows, [2]int{i, j})
			}
		}
	}

	var (
		m     = len(rows)
		nCons = n + 3*m     // x_i ≤ 1 rows, then 3 McCormick rows per pair
		nVar  = n + m + nCons // x block, y block, one slack per row
		c     = make([]float64, nVar)
		b     = make([]float64, nCons)
		a     = mat.NewDense(nCons, nVar, nil)
	)

	// Objective: diagonal folded into the linear part; couplings on y.
	for i = 0; i < n; i++ {
		c[i] = q.At(i, i) + lin[i]
	}
	var k int
	for k = 0; k < m; k++ {
		c[n+k] = 2 * q.At(rows[k][0], rows[k][1])
	}

	// Box rows: x_i + s = 1.
	for i = 0; i < n; i++ {
		a.Set(i, i, 1)
		a.Set(i, n+m+i, 1)
		b[i] = 1
	}

	// McCormick rows per pair k = (i, j):
	//   y_k − x_i + s = 0
	//   y_k − x_j + s = 0
	//   x_i + x_j − y_k + s = 1
	var row int
	for k = 0; k < m; k++ {
		i, j = rows[k][0], rows[k][1]

		row = n + 3*k
		a.Set(row, n+k, 1)
		a.Set(row, i, -1)
		a.Set(row, n+m+row, 1)

		row++
		a.Set(row, n+k, 1)
		a.Set(row, j, -1)
		a.Set(row, n+m+row, 1)

		row++
		a.Set(row, i, 1)
		a.Set(row, j, 1)
		a.Set(row, n+k, -1)
		a.Set(row, n+m+row, 1)
		b[row] = 1
	}

	z, xOpt, err := lp.Simplex(c, a, b, o.Tol, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return Relaxation{}, fmt.Errorf("%w: %v", ErrInfeasible, err)
		}

		return Relaxation{}, fmt.Errorf("%w: %v", ErrNotConverged, err)
	}

	// Report only the x block, clamped against simplex round-off.
	frac := make([]float64, n)
	for i = 0; i < n; i++ {
		frac[i] = clamp01(xOpt[i])
	}

	return Relaxation{
		Objective: z + p.R(),
		X:         frac,
		Branch:    MostFractional(frac),
	}, nil
}

// clamp01 projects v onto [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
