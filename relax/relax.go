// Package relax - oracle contract and branching helper.
//
// Design principles:
//   - One capability: SolveRelaxation(problem) → (bound, fractional point, branch).
//   - Deterministic tie-breaks (smallest index) for reproducible searches.
//   - Strict sentinels; backend failures are wrapped so errors.Is still matches.

package relax

import (
	"errors"

	"github.com/katalvlaran/biqopt/qubo"
)

// NoBranch marks a relaxation whose instance has no branchable variable
// (dimension ≤ 1).
const NoBranch = -1

// Relaxation is the synchronous answer of an Oracle for one node.
type Relaxation struct {
	// Objective is the relaxed optimal value: a valid lower bound on the
	// binary optimum of the instance it was computed for.
	Objective float64

	// X is the relaxation's optimal point, entrywise in [0,1] (clamped
	// against backend noise). len(X) equals the instance dimension.
	X []float64

	// Branch is the index of the entry of X closest to ½, ties broken by
	// smallest index; NoBranch when the instance has dimension ≤ 1.
	Branch int

	// Iterations is the backend's inner iteration count when exposed,
	// zero otherwise.
	Iterations int
}

// Oracle solves a convex relaxation of a QUBO instance.
//
// Contract: Objective ≤ min over x ∈ {0,1}ⁿ of the instance objective.
// A non-nil error means no valid bound is available for this instance.
type Oracle interface {
	SolveRelaxation(p *qubo.Problem) (Relaxation, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(p *qubo.Problem) (Relaxation, error)

// SolveRelaxation calls f(p).
func (f OracleFunc) SolveRelaxation(p *qubo.Problem) (Relaxation, error) { return f(p) }

var (
	// ErrInfeasible is returned when the backend reports the relaxation
	// infeasible. The QUBO relaxation family is always feasible (x = 0), so
	// this indicates backend trouble, not a property of the instance.
	ErrInfeasible = errors.New("relax: relaxation reported infeasible")

	// ErrNotConverged is returned when the backend fails to solve the
	// relaxation for any other reason.
	ErrNotConverged = errors.New("relax: backend failed to converge")
)

// MostFractional returns the index of the entry of x closest to ½ (maximum
// integrality uncertainty), ties broken by smallest index. It returns
// NoBranch for len(x) ≤ 1: a one-dimensional instance has no branchable
// variable, fixing its only entry terminates the node.
//
// Complexity: O(n).
func MostFractional(x []float64) int {
	if len(x) <= 1 {
		return NoBranch
	}

	var (
		best     = 0
		bestDist = distHalf(x[0])
		i        int
		d        float64
	)
	for i = 1; i < len(x); i++ {
		d = distHalf(x[i])
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// distHalf is |v − ½|.
func distHalf(v float64) float64 {
	d := v - 0.5
	if d < 0 {
		d = -d
	}

	return d
}
