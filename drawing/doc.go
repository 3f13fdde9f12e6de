// Package drawing orchestrates the full pipeline from a connected
// undirected graph to a metric, degree-bounded orthogonal drawing: shape
// construction and cycle repair (package shapebuilder), metric-consistency
// repair over the equivalence-class ordering DAGs (package equivclass),
// degree>4 node expansion, overlap shifting, and final grid compaction.
package drawing
