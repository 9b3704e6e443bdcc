// SPDX-License-Identifier: MIT
// Package qubo - the Problem record and its evaluation surface.
//
// Design principles:
//   - Immutable after construction: constructors deep-copy their inputs and
//     accessors hand out data that callers must treat as read-only.
//   - Strict sentinels from errors.go; no panics on user input.
//   - Deterministic, side-effect free methods; O(n²) worst case.

package qubo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Problem is an immutable QUBO instance: minimize xᵀQx + Pᵀx + R, x ∈ {0,1}ⁿ.
// The zero value is not usable; construct via NewProblem or NewProblemDense.
type Problem struct {
	q *mat.SymDense
	p []float64
	r float64
	n int
}

// NewProblem builds a Problem from a symmetric matrix, a linear vector and a
// constant term. Inputs are deep-copied.
//
// Contract:
//   - q non-nil with order n ≥ 1; len(p) == n; all entries finite.
//
// Errors: ErrNilProblem, ErrEmptyProblem, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: O(n²) time and space.
func NewProblem(q *mat.SymDense, p []float64, r float64) (*Problem, error) {
	if q == nil {
		return nil, ErrNilProblem
	}
	n, _ := q.Dims()
	if n == 0 {
		return nil, ErrEmptyProblem
	}
	if len(p) != n {
		return nil, ErrDimensionMismatch
	}
	if err := validateFinite(q, p, r); err != nil {
		return nil, err
	}

	// CopySym does not grow its receiver, so the copy must be allocated at
	// the source order first.
	cq := mat.NewSymDense(n, nil)
	cq.CopySym(q)
	cp := make([]float64, n)
	copy(cp, p)

	return &Problem{q: cq, p: cp, r: r, n: n}, nil
}

// NewProblemDense builds a Problem from a general dense matrix, enforcing
// square shape and symmetry within symTol. Entries q[i][j] and q[j][i] are
// averaged into the stored symmetric matrix, so tiny input noise does not
// leak into the search.
//
// Errors: ErrNilProblem, ErrNonSquare, ErrEmptyProblem, ErrAsymmetry,
// ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: O(n²).
func NewProblemDense(q *mat.Dense, p []float64, r float64) (*Problem, error) {
	if q == nil {
		return nil, ErrNilProblem
	}
	nr, nc := q.Dims()
	if nr != nc {
		return nil, ErrNonSquare
	}
	if nr == 0 {
		return nil, ErrEmptyProblem
	}

	sym, err := symmetrize(q, symTol)
	if err != nil {
		return nil, err
	}

	return NewProblem(sym, p, r)
}

// Dim returns the number of decision variables n.
func (p *Problem) Dim() int {
	if p == nil {
		return 0
	}

	return p.n
}

// Q returns the symmetric quadratic matrix. Read-only by convention:
// callers must not modify the returned matrix.
func (p *Problem) Q() *mat.SymDense { return p.q }

// P returns the linear coefficient vector. Read-only by convention.
func (p *Problem) P() []float64 { return p.p }

// R returns the constant term.
func (p *Problem) R() float64 { return p.r }

// Evaluate computes xᵀQx + Pᵀx + R at an arbitrary real point x.
//
// Contract: len(x) == n; entries finite.
//
// Errors: ErrNilProblem, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: O(n²).
func (p *Problem) Evaluate(x []float64) (float64, error) {
	if p == nil {
		return 0, ErrNilProblem
	}
	if len(x) != p.n {
		return 0, ErrDimensionMismatch
	}
	var i int
	for i = 0; i < p.n; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return 0, ErrNaNInf
		}
	}

	v := mat.NewVecDense(p.n, x)

	return mat.Inner(v, p.q, v) + floats.Dot(p.p, x) + p.r, nil
}

// Value computes the objective at a binary assignment (entries strictly 0 or 1).
//
// Errors: ErrNilProblem, ErrDimensionMismatch, ErrNotBinary.
//
// Complexity: O(n²).
func (p *Problem) Value(assign []int) (float64, error) {
	if p == nil {
		return 0, ErrNilProblem
	}
	if len(assign) != p.n {
		return 0, ErrDimensionMismatch
	}

	x := make([]float64, p.n)
	var i int
	for i = 0; i < p.n; i++ {
		switch assign[i] {
		case 0:
			// x[i] already 0.
		case 1:
			x[i] = 1
		default:
			return 0, ErrNotBinary
		}
	}

	return p.Evaluate(x)
}

// Clone returns a deep copy of the problem.
func (p *Problem) Clone() *Problem {
	if p == nil {
		return nil
	}
	cq := mat.NewSymDense(p.n, nil)
	cq.CopySym(p.q)
	cp := make([]float64, p.n)
	copy(cp, p.p)

	return &Problem{q: cq, p: cp, r: p.r, n: p.n}
}
