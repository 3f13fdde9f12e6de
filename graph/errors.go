package graph

import "errors"

// Sentinel errors for the graph package. Callers should branch with
// errors.Is; messages are stable but not part of the API contract.
var (
	// ErrNodeExists is returned when adding a node with an id already present.
	ErrNodeExists = errors.New("graph: node already exists")

	// ErrNodeNotFound is returned when an operation references a missing node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound is returned when an operation references a missing edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSelfLoop is returned when from == to (self-loops are not supported).
	ErrSelfLoop = errors.New("graph: self-loops not supported")

	// ErrEdgeExists is returned when adding an edge/arc that already exists
	// (no multi-edges).
	ErrEdgeExists = errors.New("graph: edge already exists")
)
