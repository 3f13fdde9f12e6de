// Package graphgen builds deterministic UndirectedGraph fixtures for tests
// and experimentation: cycles, paths, complete graphs, and orthogonal grids.
// Vertex ids are always allocated in ascending index order via AddNode, so
// the same constructor call always produces the same graph.
package graphgen
