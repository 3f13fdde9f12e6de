package shapebuilder

import "errors"

var (
	// ErrNoUnitClause is returned when an UNSAT proof contains no unit
	// clause to mine a split edge from; this should not happen for a
	// correctly functioning oracle and indicates a malformed proof.
	ErrNoUnitClause = errors.New("shapebuilder: proof has no unit clause to split on")

	// ErrMaxIterationsExceeded is returned when the repair loop still has
	// not found a satisfying shape after MaxIterations attempts.
	ErrMaxIterationsExceeded = errors.New("shapebuilder: exceeded max repair iterations")
)
