package graphgen

import (
	"fmt"

	"github.com/katalvlaran/orthograph/graph"
)

const (
	minCycleNodes    = 3
	minPathNodes     = 2
	minCompleteNodes = 1
	minGridDim       = 1
	minRingGridDim   = 3
)

// Cycle builds the simple cycle C_n: nodes 0..n-1 with edges i-(i+1)%n.
func Cycle(n int) (*graph.UndirectedGraph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	g := graph.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Path builds the simple path P_n: nodes 0..n-1 with edges (i-1)-i.
func Path(n int) (*graph.UndirectedGraph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	g := graph.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%d,%d): %w", i-1, i, err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n: nodes 0..n-1 with every pair
// {i,j}, i<j, connected exactly once.
func Complete(n int) (*graph.UndirectedGraph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	g := graph.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Grid builds a rows x cols orthogonal grid with 4-neighborhood adjacency
// (right and bottom neighbors per cell). It returns the graph alongside a
// row-major coordinate lookup: coords[r][c] is the node id at row r, col c.
func Grid(rows, cols int) (*graph.UndirectedGraph, [][]int, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}

	g := graph.NewUndirectedGraph()
	coords := make([][]int, rows)
	for r := 0; r < rows; r++ {
		coords[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			coords[r][c] = g.AddNode()
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := g.AddEdge(coords[r][c], coords[r][c+1]); err != nil {
					return nil, nil, fmt.Errorf("Grid: AddEdge right (%d,%d): %w", r, c, err)
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(coords[r][c], coords[r+1][c]); err != nil {
					return nil, nil, fmt.Errorf("Grid: AddEdge bottom (%d,%d): %w", r, c, err)
				}
			}
		}
	}

	return g, coords, nil
}

// GridRing builds the outer ring of a dim x dim grid: 4*(dim-1) nodes
// arranged in a cycle, with one chord connecting each pair of opposite
// nodes. dim=3 gives the canonical 8-node ring with 4 chords.
func GridRing(dim int) (*graph.UndirectedGraph, error) {
	if dim < minRingGridDim {
		return nil, fmt.Errorf("GridRing: dim=%d < min=%d: %w", dim, minRingGridDim, ErrTooFewVertices)
	}

	ringSize := 4 * (dim - 1)
	g := graph.NewUndirectedGraph()
	for i := 0; i < ringSize; i++ {
		g.AddNode()
	}
	for i := 0; i < ringSize; i++ {
		if err := g.AddEdge(i, (i+1)%ringSize); err != nil {
			return nil, fmt.Errorf("GridRing: AddEdge ring (%d,%d): %w", i, (i+1)%ringSize, err)
		}
	}

	half := ringSize / 2
	for i := 0; i < half; i++ {
		if err := g.AddEdge(i, i+half); err != nil {
			return nil, fmt.Errorf("GridRing: AddEdge chord (%d,%d): %w", i, i+half, err)
		}
	}

	return g, nil
}
