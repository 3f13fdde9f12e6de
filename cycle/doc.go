// Package cycle implements Cycle, a circular ordered sequence of distinct
// node ids. A Cycle is the basic unit the shape builder iterates over when
// emitting per-cycle SAT clauses, and the unit the repair loop mutates when
// it inserts a corner node to split an edge.
//
// Two cycles over the same node set are considered equivalent if one is a
// rotation or a reflection of the other; Equivalent implements that check
// using Booth's minimal-rotation algorithm so the comparison runs in O(n)
// rather than trying every rotation naively.
package cycle
