// Package relax_test validates the oracle boundary helpers.
package relax_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biqopt/qubo"
	"github.com/katalvlaran/biqopt/relax"
)

func TestMostFractional_PicksClosestToHalf(t *testing.T) {
	require.Equal(t, 1, relax.MostFractional([]float64{0.1, 0.5, 0.9}))
	require.Equal(t, 2, relax.MostFractional([]float64{0.0, 1.0, 0.45}))
}

func TestMostFractional_TieBreaksBySmallestIndex(t *testing.T) {
	// 0.4 and 0.6 are equally distant from ½ → index 0 wins.
	require.Equal(t, 0, relax.MostFractional([]float64{0.4, 0.6}))
	// All integral entries are equally distant → index 0 wins.
	require.Equal(t, 0, relax.MostFractional([]float64{1, 0, 1}))
}

func TestMostFractional_Degenerate(t *testing.T) {
	require.Equal(t, relax.NoBranch, relax.MostFractional(nil))
	require.Equal(t, relax.NoBranch, relax.MostFractional([]float64{}))
	// A single variable is not branchable; fixing it terminates the node.
	require.Equal(t, relax.NoBranch, relax.MostFractional([]float64{0.7}))
}

func TestOracleFunc_Adapts(t *testing.T) {
	sentinel := errors.New("boom")
	var captured *qubo.Problem

	o := relax.OracleFunc(func(p *qubo.Problem) (relax.Relaxation, error) {
		captured = p

		return relax.Relaxation{Objective: -7, Branch: relax.NoBranch}, sentinel
	})

	rel, err := o.SolveRelaxation(nil)
	require.ErrorIs(t, err, sentinel)
	require.Nil(t, captured)
	require.Equal(t, -7.0, rel.Objective)
}
