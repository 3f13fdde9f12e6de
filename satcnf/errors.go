package satcnf

import "errors"

var (
	// ErrUnknownEdge is returned when a VariablesHandler is asked about a
	// pair of node ids that were not an edge of the graph it was built from.
	ErrUnknownEdge = errors.New("satcnf: unknown edge")

	// ErrUnknownVariable is returned when reverse-looking-up a variable id
	// the handler never allocated.
	ErrUnknownVariable = errors.New("satcnf: unknown variable")

	// ErrInvalidDegree is returned by AddNodesConstraints if it encounters a
	// node with degree 0, which the shape encoding has no clause shape for
	// (an isolated node has no incident edge to orient).
	ErrInvalidDegree = errors.New("satcnf: node has invalid degree for shape constraints")
)
