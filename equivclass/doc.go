// Package equivclass groups a shaped graph's nodes into horizontal
// (y-axis) and vertical (x-axis) equivalence classes — the maximal runs
// of nodes connected only by horizontal, respectively only by vertical,
// edges — and builds the per-axis ordering DAG over those classes that
// coordinate assignment later topologically sorts.
//
// Class ids are allocated in node-iteration order, numbered from 0, so
// results are deterministic for a given graph and shape.
package equivclass
