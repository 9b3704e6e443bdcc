// Package bnb - solve-time configuration.

package bnb

import (
	"time"

	"github.com/rs/zerolog"
)

// Options configures one Solve call. The zero value (via DefaultOptions) is
// a strict exact solve: zero gap, no cutoffs, package-level logger.
type Options struct {
	// GapTolerance stops the search once lower ≥ upper − GapTolerance,
	// certifying the incumbent optimal within the tolerance. Must be ≥ 0.
	GapTolerance float64

	// IntegralData selects the ceiling termination test ⌈lower⌉ ≥ upper.
	// Only valid when every entry of Q and P is integral (the optimum is
	// then an integer, BiqMac style); it typically closes the tree much
	// earlier than a pure gap test.
	IntegralData bool

	// TimeLimit is a soft wall-clock budget; 0 means unlimited. When it
	// elapses, Solve returns the incumbent with ErrTimeLimit.
	TimeLimit time.Duration

	// MaxNodes caps the number of processed (popped) nodes; 0 means
	// unlimited. When reached, Solve returns the incumbent with ErrNodeLimit.
	MaxNodes int

	// Progress, when non-nil, receives one Row per processed node.
	Progress func(Row)

	// Logger overrides the package logger for this solve; nil keeps it.
	Logger *zerolog.Logger
}

// DefaultOptions returns the canonical exact-solve configuration.
func DefaultOptions() Options {
	return Options{GapTolerance: 0}
}

// validate checks internal consistency of Options. Only sentinel errors.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.GapTolerance < 0 {
		return ErrNegativeGap
	}
	if o.TimeLimit < 0 || o.MaxNodes < 0 {
		return ErrBadOptions
	}

	return nil
}
