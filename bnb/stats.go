// Package bnb - result and progress bookkeeping.

package bnb

import "time"

// Row is one line of the per-node progress table:
// relaxations solved so far, currently active nodes, global lower bound,
// best incumbent objective (REL_SOLVED ACTIVE_NDS OBJ_BOUND BEST_OBJ).
type Row struct {
	Relaxations   int
	Active        int
	LowerBound    float64
	BestObjective float64
}

// Stats aggregates solve statistics.
type Stats struct {
	// Relaxations is the total number of oracle calls.
	Relaxations int

	// NodesProcessed counts nodes popped from the active queue.
	NodesProcessed int

	// Dropped counts nodes discarded because their relaxation failed.
	// A nonzero count weakens the optimality certificate of an exhausted
	// tree (see Result.Optimal).
	Dropped int

	// MaxActive is the high-water mark of the active queue.
	MaxActive int

	// OracleIterations sums the backend's inner iteration counts when the
	// oracle exposes them; 0 otherwise.
	OracleIterations int

	// OracleTime is the total wall-clock time spent inside the oracle.
	OracleTime time.Duration

	// LowerBound and UpperBound are the final global bounds.
	LowerBound float64
	UpperBound float64
}

// Result is the outcome of one Solve call.
type Result struct {
	// Value is the incumbent objective, stabilized to 1e-9.
	Value float64

	// Assignment is the incumbent {0,1} vector over the original variables.
	Assignment []int

	// Optimal reports whether optimality (within GapTolerance) was proved:
	// either the gap test fired, or the tree was exhausted with no dropped
	// nodes.
	Optimal bool

	// Gap is max(0, UpperBound − LowerBound), stabilized to 1e-9.
	Gap float64

	// Stats carries the aggregated solve statistics.
	Stats Stats
}
