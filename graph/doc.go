// Package graph provides the fundamental in-memory graph containers used by
// the orthogonal drawing pipeline: UndirectedGraph (the input/working graph)
// and DirectedGraph (used for the per-axis ordering DAGs built in package
// equivclass).
//
// Both containers key vertices by a non-negative int id. Ids are dense but
// not necessarily contiguous across a graph's lifetime: removing a node never
// recycles its id, and the graph tracks a monotonically increasing nextID
// cursor so freshly-synthesized nodes (bend/helper nodes inserted later in
// the pipeline) never collide with existing ones.
//
// UndirectedGraph forbids self-loops and parallel edges; DirectedGraph
// forbids self-loops and duplicate arcs. Neither supports multi-graphs,
// matching the Non-goals of the orthogonal drawing specification this
// package serves. Iteration order over neighbors is unspecified but stable
// for a given instance between mutations — callers must not rely on
// neighbor order for correctness, only for determinism within a run.
package graph
