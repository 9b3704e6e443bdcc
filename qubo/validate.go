// SPDX-License-Identifier: MIT
// Package qubo - validation utilities shared by the constructors.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²) worst case; no hidden allocations beyond the returned matrix.

package qubo

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// symTol is the structural tolerance for symmetry checks on dense input.
// It is independent from any solver-facing gap tolerance: it governs whether
// data is accepted, not how the search terminates.
const symTol = 1e-9

// validateFinite rejects NaN/±Inf anywhere in (q, p, r).
//
// Complexity: O(n²).
func validateFinite(q *mat.SymDense, p []float64, r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return ErrNaNInf
	}
	var i, j int
	for i = range p {
		if math.IsNaN(p[i]) || math.IsInf(p[i], 0) {
			return ErrNaNInf
		}
	}
	n, _ := q.Dims()
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = q.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}
	}

	return nil
}

// symmetrize converts a square dense matrix into SymDense storage, averaging
// mirrored entries. Any |q[i][j]−q[j][i]| > tol is a contract violation.
//
// Errors: ErrAsymmetry, ErrNaNInf.
//
// Complexity: O(n²).
func symmetrize(q *mat.Dense, tol float64) (*mat.SymDense, error) {
	n, _ := q.Dims()
	out := mat.NewSymDense(n, nil)

	var (
		i, j     int
		aij, aji float64
		diff     float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			aij = q.At(i, j)
			aji = q.At(j, i)
			if math.IsNaN(aij) || math.IsNaN(aji) {
				return nil, ErrNaNInf
			}
			diff = aij - aji
			if diff < 0 {
				diff = -diff
			}
			if diff > tol {
				return nil, ErrAsymmetry
			}
			out.SetSym(i, j, (aij+aji)/2)
		}
	}

	return out, nil
}
