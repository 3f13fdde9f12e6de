// Package attrs holds the per-node decorations the drawing pipeline
// attaches on top of a graph: a Color tag (used to mark bend/corner/helper
// nodes distinctly from original BLACK nodes) and an integer grid
// Position. Both are stored sparsely, keyed by node id, so nodes without
// an assigned color or position simply have no entry.
package attrs
