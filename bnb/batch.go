// Package bnb - parallel driver for independent instances.
//
// One Solve call is inherently sequential: the best-first order imposes a
// strict dependency on the bound pair, so the natural parallelization point
// is across problem instances, not within one tree. SolveBatch runs
// independent solves on a bounded errgroup; no mutable state is shared.

package bnb

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/biqopt/qubo"
	"github.com/katalvlaran/biqopt/relax"
)

// SolveBatch solves each problem independently, at most parallel solves at
// a time (parallel ≤ 0 means unbounded). newOracle is called once per
// instance because a single Oracle value need not be goroutine-safe.
//
// The returned slice is index-aligned with problems. The first failing
// instance aborts the wait and its error (wrapped with the instance index)
// is returned; results of instances that finished remain populated.
//
// Errors: ErrNilOracle when newOracle is nil, plus anything Solve returns.
func SolveBatch(problems []*qubo.Problem, newOracle func() relax.Oracle, opts Options, parallel int) ([]Result, error) {
	if newOracle == nil {
		return nil, ErrNilOracle
	}

	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	results := make([]Result, len(problems))
	for i, p := range problems {
		i, p := i, p
		g.Go(func() error {
			res, err := Solve(p, newOracle(), opts)
			if err != nil {
				return fmt.Errorf("bnb: instance %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
