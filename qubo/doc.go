// SPDX-License-Identifier: MIT
// Package qubo models unconstrained binary quadratic optimization problems:
//
//	minimize  f(x) = xᵀQx + Pᵀx + R,   x ∈ {0,1}ⁿ,
//
// with Q a symmetric real n×n matrix, P a real length-n vector and R a real
// scalar. The package provides:
//
//   - Problem        — immutable problem record on gonum dense storage
//   - NewProblem     — construction from *mat.SymDense (symmetry by type)
//   - NewProblemDense— construction from *mat.Dense (symmetry within symTol)
//   - Evaluate/Value — objective at real / binary points
//   - Reduce         — algebraic elimination of one fixed variable
//   - BruteForce     — exact 2ⁿ reference minimizer for small n
//
// Reduction algebra (fixing variable p to v ∈ {0,1}):
//
//	Q₀ = Q with row and column p removed
//	P₀ = P (entry p removed) + 2·v·Q[:,p] (entry p removed)
//	R₀ = v·Q[p,p] + v·P[p] + R
//
// which follows from expanding f with x_p = v and folding the symmetric
// cross-terms into the linear part.
//
// Error policy: only sentinel errors from errors.go; callers match with
// errors.Is. No panics on user input.
package qubo
