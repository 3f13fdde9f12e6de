package graphalgo

import "errors"

var (
	// ErrGraphNil is returned when a required graph argument is nil.
	ErrGraphNil = errors.New("graphalgo: graph is nil")

	// ErrNotConnected is returned by algorithms that require a connected
	// undirected graph, such as spanning tree and cycle basis construction.
	ErrNotConnected = errors.New("graphalgo: graph is not connected")

	// ErrHasCycle is returned by TopologicalOrder when the input directed
	// graph is not a DAG.
	ErrHasCycle = errors.New("graphalgo: graph has a cycle")
)
