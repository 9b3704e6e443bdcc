// Package bnb - the best-first Branch-and-Bound engine.
//
// The engine struct holds all search data for one Solve call (no package
// state, no singletons): the active heap, the bound pair, the incumbent and
// the counters. The main loop:
//
//	pop min-(objective, seq) node           → lower bound
//	emit progress row
//	gap / ceiling test                      → optimality proved, stop
//	time / node cutoffs                     → incumbent + sentinel
//	dimension ≤ 1                           → terminal, discard
//	for v ∈ {0,1}: reduce on branch var, solve child relaxation,
//	               round → incumbent update, push child
//
// Every relaxation result is rounded at threshold ½ and evaluated on the
// ORIGINAL problem; that is the only mechanism improving the upper bound,
// and it runs at every node, not just leaves.

package bnb

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/biqopt/qubo"
	"github.com/katalvlaran/biqopt/relax"
)

// roundScale controls final value stabilization precision (1e-9), keeping
// reported objectives stable across platforms without affecting optimality.
const roundScale = 1e9

// intRoundTol guards the ceiling termination test against downward FP noise
// in the oracle's bound (4.999999999 must still ceil to 5).
const intRoundTol = 1e-6

// engine holds all search data for one Solve call.
type engine struct {
	root   *qubo.Problem
	oracle relax.Oracle
	opts   Options
	log    zerolog.Logger

	active nodeQueue
	seq    uint64

	lower     float64
	upper     float64
	incumbent []int

	useDeadline bool
	deadline    time.Time

	stats Stats
}

// Solve runs the Branch-and-Bound search on p using the given relaxation
// oracle and returns the optimal (or gap/limit-certified) assignment.
//
// Contract:
//   - p non-nil with n ≥ 1 (construction via qubo already enforces shape,
//     symmetry and finiteness); oracle non-nil; opts valid.
//
// Errors: qubo.ErrNilProblem, ErrNilOracle, ErrNegativeGap, ErrBadOptions,
// ErrRootRelaxation, ErrTimeLimit, ErrNodeLimit. On ErrTimeLimit and
// ErrNodeLimit the returned Result still carries the incumbent: a partial
// Branch-and-Bound run yields a valid upper bound, unlike a partial tour.
//
// Complexity: exponential worst case; per node O(n²) + one oracle solve.
func Solve(p *qubo.Problem, oracle relax.Oracle, opts Options) (Result, error) {
	if p == nil {
		return Result{}, qubo.ErrNilProblem
	}
	if p.Dim() == 0 {
		return Result{}, qubo.ErrEmptyProblem
	}
	if oracle == nil {
		return Result{}, ErrNilOracle
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	e := &engine{
		root:   p,
		oracle: oracle,
		opts:   opts,
		log:    logger,
		lower:  math.Inf(-1),
		upper:  math.Inf(1),
	}
	if opts.Logger != nil {
		e.log = *opts.Logger
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Root relaxation: the only oracle failure that is fatal, since without
	// it there is no tree to search.
	rel, err := e.callOracle(p)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRootRelaxation, err)
	}

	rootAssign := make([]int, p.Dim())
	rootMap := make([]int, p.Dim())
	var i int
	for i = range rootAssign {
		rootAssign[i] = freeVar
		rootMap[i] = i
	}
	e.updateIncumbent(rootAssign, rootMap, rel.X)

	heap.Push(&e.active, &node{
		objective:  rel.Objective,
		problem:    p,
		assignment: rootAssign,
		indexMap:   rootMap,
		branch:     rel.Branch,
		seq:        0,
	})
	e.seq = 1
	e.stats.MaxActive = 1

	return e.run()
}

// run is the main best-first loop.
func (e *engine) run() (Result, error) {
	var optimal bool

	for e.active.Len() > 0 {
		nd := heap.Pop(&e.active).(*node)
		e.stats.NodesProcessed++

		// Queue is processed in non-decreasing objective order, so the popped
		// objective is a valid global lower bound.
		e.lower = nd.objective
		e.emitProgress()

		if e.gapClosed() {
			e.active = e.active[:0]
			optimal = true

			break
		}

		// Caller cutoffs sit after the bound update and before expansion, so
		// the lower bound stays monotone even on truncated runs.
		if e.useDeadline && time.Now().After(e.deadline) {
			return e.result(false), ErrTimeLimit
		}
		if e.opts.MaxNodes > 0 && e.stats.NodesProcessed >= e.opts.MaxNodes && e.active.Len() > 0 {
			return e.result(false), ErrNodeLimit
		}

		// Terminal: ≤1 free variable. Its rounding already reached the
		// incumbent when its relaxation was solved; nothing to expand.
		if nd.problem.Dim() <= 1 {
			continue
		}

		e.expand(nd)
	}

	if !optimal && e.stats.Dropped == 0 {
		// Tree exhausted with every node accounted for: the enumeration is
		// complete and the incumbent is optimal.
		e.lower = e.upper
		optimal = true
	}

	return e.result(optimal), nil
}

// expand derives and enqueues both children of nd (branch variable fixed to
// 0 and to 1). A child whose relaxation fails is dropped, not fatal.
func (e *engine) expand(nd *node) {
	if nd.branch < 0 || nd.branch >= nd.problem.Dim() {
		// Oracle returned no usable branch candidate for a non-terminal
		// node; without it the sub-tree cannot be explored.
		e.stats.Dropped++
		e.log.Warn().Int("dim", nd.problem.Dim()).Uint64("seq", nd.seq).
			Msg("no branch candidate, node dropped")

		return
	}

	orig := nd.indexMap[nd.branch]

	var v int
	for v = 0; v <= 1; v++ {
		child, err := nd.problem.Reduce(nd.branch, v)
		if err != nil {
			e.stats.Dropped++
			e.log.Warn().Err(err).Uint64("seq", nd.seq).Int("fix", v).
				Msg("reduction failed, child dropped")

			continue
		}

		assign := slices.Clone(nd.assignment)
		assign[orig] = v
		idxMap := slices.Delete(slices.Clone(nd.indexMap), nd.branch, nd.branch+1)

		rel, err := e.callOracle(child)
		if err != nil {
			// Silent pruning per design: no valid bound is available, the
			// rest of the tree stays valid. Observable via Stats.Dropped.
			e.stats.Dropped++
			e.log.Warn().Err(err).Uint64("seq", nd.seq).Int("fix", v).
				Msg("child relaxation failed, node dropped")

			continue
		}

		e.updateIncumbent(assign, idxMap, rel.X)

		heap.Push(&e.active, &node{
			objective:  rel.Objective,
			problem:    child,
			assignment: assign,
			indexMap:   idxMap,
			branch:     rel.Branch,
			seq:        e.seq,
		})
		e.seq++
		if e.active.Len() > e.stats.MaxActive {
			e.stats.MaxActive = e.active.Len()
		}
	}
}

// callOracle times one relaxation solve and aggregates oracle statistics.
func (e *engine) callOracle(p *qubo.Problem) (relax.Relaxation, error) {
	start := time.Now()
	rel, err := e.oracle.SolveRelaxation(p)
	e.stats.OracleTime += time.Since(start)
	e.stats.Relaxations++
	if err == nil {
		e.stats.OracleIterations += rel.Iterations
	}

	return rel, err
}

// updateIncumbent rounds the fractional point at threshold ½ into the free
// entries of assign (via idxMap), evaluates the ORIGINAL objective at the
// completed vector and commits it if it improves the upper bound. This is a
// heuristic improvement step, preserved exactly as designed; its rounding
// rule must not be replaced by a cleverer one.
func (e *engine) updateIncumbent(assign []int, idxMap []int, x []float64) {
	full := slices.Clone(assign)
	var k int
	for k = range x {
		if x[k] >= 0.5 {
			full[idxMap[k]] = 1
		} else {
			full[idxMap[k]] = 0
		}
	}

	val, err := e.root.Value(full)
	if err != nil {
		// Unreachable for well-formed nodes; never poison the incumbent.
		return
	}
	if val < e.upper {
		e.upper = val
		e.incumbent = full
	}
}

// gapClosed applies the termination test of step 2b: plain gap by default,
// ceiling test under IntegralData.
func (e *engine) gapClosed() bool {
	if e.opts.IntegralData {
		return math.Ceil(e.lower-intRoundTol) >= e.upper
	}

	return e.lower >= e.upper-e.opts.GapTolerance
}

// emitProgress publishes one progress row through the callback and logger.
func (e *engine) emitProgress() {
	row := Row{
		Relaxations:   e.stats.Relaxations,
		Active:        e.active.Len(),
		LowerBound:    e.lower,
		BestObjective: e.upper,
	}
	if e.opts.Progress != nil {
		e.opts.Progress(row)
	}
	e.log.Debug().
		Int("rel_solved", row.Relaxations).
		Int("active_nds", row.Active).
		Float64("obj_bound", row.LowerBound).
		Float64("best_obj", row.BestObjective).
		Msg("node processed")
}

// result finalizes bounds, gap and statistics.
func (e *engine) result(optimal bool) Result {
	gap := e.upper - e.lower
	if gap < 0 || math.IsNaN(gap) {
		gap = 0
	}
	e.stats.LowerBound = e.lower
	e.stats.UpperBound = e.upper

	return Result{
		Value:      round1e9(e.upper),
		Assignment: e.incumbent,
		Optimal:    optimal,
		Gap:        round1e9(gap),
		Stats:      e.stats,
	}
}

// round1e9 returns x rounded to 1e-9 absolute precision; stabilizes reported
// values across platforms without affecting algorithmic correctness.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
