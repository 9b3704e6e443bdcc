// Package bnb - search-tree node record and the active-node priority queue.
//
// Every node owns its reduced problem, the partial assignment over the
// ORIGINAL variables, and the index map from reduced to original
// coordinates (each elimination reshuffles indices, so the map is the only
// way back). The queue orders nodes by ascending relaxed objective with the
// monotonic sequence number as tie-break, making the order total and every
// run reproducible.

package bnb

import "github.com/katalvlaran/biqopt/qubo"

// node is one sub-problem of the search tree.
type node struct {
	// objective is the relaxed lower bound computed for this node's
	// sub-problem by the oracle.
	objective float64

	// problem is the reduced instance after eliminating all fixed variables.
	problem *qubo.Problem

	// assignment is the partial {0,1} assignment over the original n
	// variables; free entries hold the freeVar placeholder.
	assignment []int

	// indexMap maps reduced coordinate k to its original variable index.
	// len(indexMap) == problem.Dim().
	indexMap []int

	// branch is the oracle's branching candidate in reduced coordinates,
	// or relax.NoBranch for terminal nodes (dimension ≤ 1).
	branch int

	// seq is the monotonic enqueue counter used as deterministic tie-break.
	seq uint64
}

// freeVar marks a not-yet-fixed entry of a node assignment.
const freeVar = -1

// nodeQueue is a min-heap over (objective, seq). It implements
// container/heap.Interface; callers go through heap.Push/heap.Pop.
type nodeQueue []*node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].objective == q[j].objective {
		return q[i].seq < q[j].seq
	}

	return q[i].objective < q[j].objective
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(*node)) }

func (q *nodeQueue) Pop() any {
	old := *q
	last := len(old) - 1
	nd := old[last]
	old[last] = nil // release the reference; reduced problems are heavy
	*q = old[:last]

	return nd
}
