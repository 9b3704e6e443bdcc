// SPDX-License-Identifier: MIT
// Package qubo - algebraic elimination of a fixed variable.
//
// Fixing x_pivot = v in f(x) = xᵀQx + Pᵀx + R and regrouping yields a QUBO
// of dimension n−1 over the remaining variables:
//
//	Q₀ = Q with row and column pivot removed
//	P₀ = P (entry pivot removed) + 2·v·Qcol        (Qcol = column pivot, entry pivot removed)
//	R₀ = v·Q[pivot,pivot] + v·P[pivot] + R
//
// The factor 2 comes from the symmetric pair of cross-terms x_i·x_pivot and
// x_pivot·x_i. Since v ∈ {0,1}, v² = v, so the diagonal term folds into R₀
// with coefficient v.
//
// A fresh, materialized reduced problem is returned on every call; parents
// stay immutable and children share no storage with them.

package qubo

import "gonum.org/v1/gonum/mat"

// Reduce eliminates the pivot-th variable at value v ∈ {0,1} and returns the
// reduced problem of dimension n−1.
//
// Contract:
//   - 0 ≤ pivot < n; v ∈ {0,1}; n ≥ 2 (reducing the last variable would
//     produce an empty problem, which the package rejects).
//
// Errors: ErrNilProblem, ErrIndexOutOfRange, ErrNotBinary, ErrEmptyProblem.
//
// Complexity: O(n²) time and space.
func (p *Problem) Reduce(pivot int, v int) (*Problem, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if pivot < 0 || pivot >= p.n {
		return nil, ErrIndexOutOfRange
	}
	if v != 0 && v != 1 {
		return nil, ErrNotBinary
	}
	if p.n < 2 {
		return nil, ErrEmptyProblem
	}

	var (
		n0 = p.n - 1
		q0 = mat.NewSymDense(n0, nil)
		p0 = make([]float64, n0)
		vf = float64(v)
	)

	// Q₀: copy the upper triangle, skipping the pivot row/column.
	var i, j, ri, rj int
	for i = 0; i < p.n; i++ {
		if i == pivot {
			continue
		}
		rj = ri
		for j = i; j < p.n; j++ {
			if j == pivot {
				continue
			}
			q0.SetSym(ri, rj, p.q.At(i, j))
			rj++
		}
		ri++
	}

	// P₀: surviving linear terms plus the folded coupling column.
	ri = 0
	for i = 0; i < p.n; i++ {
		if i == pivot {
			continue
		}
		p0[ri] = p.p[i] + 2*vf*p.q.At(i, pivot)
		ri++
	}

	// R₀: the fixed variable's own contribution.
	r0 := vf*p.q.At(pivot, pivot) + vf*p.p[pivot] + p.r

	return &Problem{q: q0, p: p0, r: r0, n: n0}, nil
}
