// SPDX-License-Identifier: MIT
// Package qubo - exhaustive reference minimizer.
//
// BruteForce enumerates all 2ⁿ binary assignments and returns the exact
// minimum. It exists as a correctness reference for the Branch-and-Bound
// engine and as a sanity tool for tiny instances; it is NOT the production
// solve path.

package qubo

// bruteForceMaxDim is the hard dimension limit for BruteForce. Beyond it the
// 2ⁿ enumeration is hopeless on any hardware we care about.
const bruteForceMaxDim = 30

// BruteForce returns the exact minimum objective value and a minimizing
// assignment, enumerating assignments in mask order (bit i ↦ variable i).
// Among equal minima the first one encountered wins, so the result is
// deterministic.
//
// Errors: ErrNilProblem, ErrTooLarge.
//
// Complexity: O(2ⁿ·n²) time, O(n) extra space.
func BruteForce(p *Problem) (float64, []int, error) {
	if p == nil {
		return 0, nil, ErrNilProblem
	}
	if p.n > bruteForceMaxDim {
		return 0, nil, ErrTooLarge
	}

	var (
		n     = p.n
		x     = make([]float64, n)
		best  = make([]int, n)
		first = true

		bestVal float64
		mask    uint64
		total   = uint64(1) << uint(n)

		i, j int
		row  float64
		val  float64
	)

	for mask = 0; mask < total; mask++ {
		for i = 0; i < n; i++ {
			x[i] = float64((mask >> uint(i)) & 1)
		}

		// f(x) = R + Σ_i x_i·(P_i + Σ_j Q_ij·x_j), skipping zero entries.
		val = p.r
		for i = 0; i < n; i++ {
			if x[i] == 0 {
				continue
			}
			row = p.p[i]
			for j = 0; j < n; j++ {
				if x[j] != 0 {
					row += p.q.At(i, j)
				}
			}
			val += row
		}

		if first || val < bestVal {
			first = false
			bestVal = val
			for i = 0; i < n; i++ {
				best[i] = int(x[i])
			}
		}
	}

	return bestVal, best, nil
}
