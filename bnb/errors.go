// Package bnb: sentinel error set. All engine operations return these
// sentinels (or qubo's) and tests match them via errors.Is.

package bnb

import "errors"

var (
	// ErrNilOracle indicates that Solve was called without a relaxation oracle.
	ErrNilOracle = errors.New("bnb: nil relaxation oracle")

	// ErrNegativeGap indicates Options.GapTolerance < 0.
	ErrNegativeGap = errors.New("bnb: negative gap tolerance")

	// ErrBadOptions indicates an otherwise invalid Options combination
	// (negative TimeLimit or MaxNodes).
	ErrBadOptions = errors.New("bnb: invalid options")

	// ErrRootRelaxation indicates the oracle failed on the root instance;
	// without a root bound no search tree can be built.
	ErrRootRelaxation = errors.New("bnb: root relaxation failed")

	// ErrTimeLimit is returned when Options.TimeLimit elapses. The returned
	// Result still carries the incumbent found so far (a valid upper bound).
	ErrTimeLimit = errors.New("bnb: time limit exceeded")

	// ErrNodeLimit is returned when Options.MaxNodes is reached. The returned
	// Result still carries the incumbent found so far.
	ErrNodeLimit = errors.New("bnb: node limit exceeded")
)
