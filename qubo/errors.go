// SPDX-License-Identifier: MIT
// Package qubo: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the qubo
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package qubo

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "qubo: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap at the outer boundary — callers
// will still match via errors.Is.

var (
	// ErrNilProblem indicates a nil *Problem receiver or argument.
	ErrNilProblem = errors.New("qubo: nil problem")

	// ErrEmptyProblem indicates a problem of dimension zero (no variables).
	// Dimension-zero data is rejected at construction; a reduction that would
	// produce it is rejected as well.
	ErrEmptyProblem = errors.New("qubo: empty problem (n = 0)")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("qubo: matrix is not square")

	// ErrDimensionMismatch indicates incompatible sizes between Q, P, or an
	// evaluation point (len(P) != n, len(x) != n, …).
	ErrDimensionMismatch = errors.New("qubo: dimension mismatch")

	// ErrAsymmetry signals that the quadratic matrix violated symmetry beyond
	// the structural tolerance symTol.
	ErrAsymmetry = errors.New("qubo: matrix is not symmetric within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value where finite data is required.
	ErrNaNInf = errors.New("qubo: NaN or Inf encountered")

	// ErrIndexOutOfRange indicates a pivot or variable index outside [0..n-1].
	ErrIndexOutOfRange = errors.New("qubo: index out of range")

	// ErrNotBinary indicates an assignment entry (or fixing value) outside {0,1}.
	ErrNotBinary = errors.New("qubo: assignment entry is not 0/1")

	// ErrTooLarge indicates an instance beyond the hard limit of an
	// enumeration helper (BruteForce).
	ErrTooLarge = errors.New("qubo: instance too large for exhaustive search")
)
