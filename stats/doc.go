// Package stats computes quality metrics over a finished orthogonal
// drawing: edge lengths, bend counts, drawn area, and edge crossings. Edge
// lengths, bends, and area are measured on the compacted integer grid
// produced by drawing.ComputeNodeToIndexPosition; crossings are tested on
// the node positions stored in the drawing's attributes, which after
// compaction are those grid indices scaled by the class spacing. Either
// way they describe the drawing as rendered rather than its
// pre-compaction working coordinates.
package stats
