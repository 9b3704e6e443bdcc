// Package biqopt is an exact solver toolkit for unconstrained binary
// quadratic optimization (QUBO): minimize xᵀQx + Pᵀx + R over x ∈ {0,1}ⁿ.
//
// 🚀 What is biqopt?
//
//	A small, deterministic, pure-Go library built around a best-first
//	Branch-and-Bound engine driven by pluggable convex relaxations:
//		• Problem model: symmetric Q, linear P, constant R on gonum matrices
//		• Algebraic node reduction: fix a variable, fold it into (Q′, P′, R′)
//		• Best-first search: active nodes ordered by relaxed objective
//		• Rounding-based incumbent updates at every node
//		• Gap-tolerance and integral (ceiling) termination tests
//		• Bundled LP relaxation oracle (McCormick linearization, gonum simplex)
//
// ✨ Why choose biqopt?
//
//   - Deterministic – total (objective, sequence) node order, index tie-breaks
//   - Strict sentinels – errors.Is-friendly, no panics on user input
//   - Pluggable bounds – bring your own conic/SDP solver via relax.Oracle
//   - Observable – structured per-node progress log and solve statistics
//
// Everything is organized under three subpackages:
//
//	qubo/  — problem record, validation, reduction, exact reference minimizer
//	relax/ — relaxation-oracle boundary + bundled LP lower-bound oracle
//	bnb/   — the Branch-and-Bound engine, options, statistics, batch driver
//
// Quick start:
//
//	p, _ := qubo.NewProblemDense(q, lin, 0)
//	res, err := bnb.Solve(p, relax.NewLPOracle(), bnb.DefaultOptions())
//	// res.Value, res.Assignment, res.Stats …
//
// Use biqopt when you need certified optima (or gap-certified near-optima)
// on small-to-medium QUBO instances, not a heuristic sampler.
package biqopt
