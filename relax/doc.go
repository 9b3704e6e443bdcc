// Package relax defines the relaxation-oracle boundary of the
// Branch-and-Bound engine and ships a bundled LP-based oracle.
//
// An Oracle receives a (reduced) QUBO instance and returns:
//
//   - Objective — a valid LOWER bound on the {0,1}-constrained optimum,
//     obtained from a convex relaxation of the instance;
//   - X         — the relaxation's optimal point, a generally fractional
//     vector in [0,1]ⁿ;
//   - Branch    — the index of the entry of X closest to ½ (the engine's
//     most-fractional branching rule), or NoBranch when n ≤ 1.
//
// The engine treats the oracle as an opaque collaborator: any error from
// SolveRelaxation makes the corresponding node un-expandable and it is
// dropped (see bnb). Implementations wrapping external conic/SDP solvers
// plug in through this single capability; OracleFunc adapts plain functions
// for tests and ad-hoc bounds.
//
// The bundled LPOracle solves the standard McCormick linearization of the
// QUBO over the unit box with gonum's simplex. It is exact on binary points
// and therefore always a correct lower bound; it is weaker than a
// doubly-nonnegative SDP relaxation, which affects only the size of the
// search tree, never the correctness of the result.
package relax
