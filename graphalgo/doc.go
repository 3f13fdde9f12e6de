// Package graphalgo implements the graph-theoretic building blocks the
// drawing pipeline is assembled from: connectivity, spanning trees, a
// fundamental cycle basis, Kahn's topological ordering, single-cycle
// discovery (directed and undirected), biconnected components, and
// two-coloring.
//
// Every algorithm here operates on the int-keyed graphs in package graph
// and returns the cycle.Cycle type where a circular node sequence is the
// natural result.
package graphalgo
