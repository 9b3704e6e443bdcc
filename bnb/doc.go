// Package bnb implements a best-first Branch-and-Bound engine for
// unconstrained binary quadratic optimization.
//
// Solve enumerates sub-problems obtained from the root QUBO instance by
// fixing variables one at a time, maintains an active-node priority queue
// ordered by ascending relaxed objective, and prunes with the classic
// bound pair:
//
//   - lower bound  — the relaxed objective of the most recently popped node
//     (valid globally because nodes are expanded in non-decreasing relaxed
//     objective order);
//   - upper bound  — the objective of the best integral assignment found so
//     far (the incumbent), improved at every node by rounding the oracle's
//     fractional point and re-evaluating the ORIGINAL objective.
//
// Rationale (succinct):
//  1. Strict input validation up front; sentinel errors only.
//  2. One oracle call per enqueued node; the oracle is an opaque convex
//     relaxation (see package relax) and a failed call merely drops the
//     node rather than aborting the search.
//  3. Child derivation is purely algebraic (qubo.Reduce): fixing the branch
//     variable folds its couplings into the child's linear and constant
//     terms, so every node owns a materialized, immutable reduced problem.
//  4. Determinism: the queue key is (objective, sequence) — a total order —
//     and the branch variable is the most-fractional entry with smallest
//     index tie-break.
//  5. Termination: gap test lower ≥ upper − GapTolerance; with
//     Options.IntegralData, the ceiling test ⌈lower⌉ ≥ upper (valid when Q
//     and P are integral, BiqMac style). Optional wall-clock and node-count
//     cutoffs return the incumbent with ErrTimeLimit / ErrNodeLimit.
//
// Concurrency: one Solve call is strictly single-threaded and owns all of
// its search state; independent Solve calls share nothing and may run in
// parallel (see SolveBatch).
//
// Complexity: worst case exponential in n (exact search); per node O(n²)
// reduction plus one oracle solve. Memory is dominated by the active queue
// (O(n²) per stored node for the reduced matrices).
package bnb
