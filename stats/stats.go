package stats

import (
	"math"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/drawing"
	"github.com/katalvlaran/orthograph/graph"
)

// OrthogonalStats aggregates the quality metrics ComputeAllOrthogonalStats
// gathers in one pass over a Drawing.
type OrthogonalStats struct {
	TotalCrossings   int
	TotalBends       int
	TotalArea        int
	TotalEdgeLength  int
	MaxEdgeLength    int
	EdgeLengthStdDev float64
	MaxBendsPerEdge  int
	BendsStdDev      float64
}

// ComputeAllOrthogonalStats gathers every metric this package defines for
// d's drawn graph.
func ComputeAllOrthogonalStats(d *drawing.Drawing) OrthogonalStats {
	edgeLengths := ComputeEdgeLengths(d)
	bendsCounts := ComputeBendsCounts(d)

	return OrthogonalStats{
		TotalCrossings:   ComputeTotalCrossings(d),
		TotalBends:       sum(bendsCounts),
		TotalArea:        ComputeTotalArea(d),
		TotalEdgeLength:  sum(edgeLengths),
		MaxEdgeLength:    maxOf(edgeLengths),
		EdgeLengthStdDev: stddev(edgeLengths),
		MaxBendsPerEdge:  maxOf(bendsCounts),
		BendsStdDev:      stddev(bendsCounts),
	}
}

// ComputeEdgeLengths returns, for every original edge (an edge between two
// BLACK nodes in the source graph, possibly routed through bend or helper
// nodes), its Manhattan length on the compacted grid.
func ComputeEdgeLengths(d *drawing.Drawing) []int {
	nodeToX, nodeToY := drawing.ComputeNodeToIndexPosition(d.Graph, d.Attributes, drawing.DefaultGridClusterThreshold)

	var lengths []int
	visited := make(map[int]bool)
	for _, id := range d.Graph.NodeIDs() {
		if d.Attributes.GetNodeColor(id) != attrs.Black {
			continue
		}

		var dfs func(current, blackID, length int)
		dfs = func(current, blackID, length int) {
			visited[current] = true
			for _, neighbor := range d.Graph.SortedNeighbors(current) {
				if visited[neighbor] {
					continue
				}
				segment := abs(nodeToX[current]-nodeToX[neighbor]) + abs(nodeToY[current]-nodeToY[neighbor])
				if d.Attributes.GetNodeColor(neighbor) != attrs.Black {
					dfs(neighbor, blackID, length+segment)
				} else if blackID < neighbor {
					lengths = append(lengths, length+segment)
				}
			}
			delete(visited, current)
		}
		dfs(id, id, 0)
	}

	return lengths
}

// ComputeBendsCounts returns, for every original edge, the number of bend
// nodes its route passes through, not counting helper nodes that sit at
// the same compacted grid point as their neighbor (those are artifacts of
// degree>4 expansion, not visible corners).
func ComputeBendsCounts(d *drawing.Drawing) []int {
	nodeToX, nodeToY := drawing.ComputeNodeToIndexPosition(d.Graph, d.Attributes, drawing.DefaultGridClusterThreshold)

	var counts []int
	for _, id := range d.Graph.NodeIDs() {
		if d.Attributes.GetNodeColor(id) != attrs.Black {
			continue
		}

		visited := make(map[int]bool)
		var dfs func(current, blackID, count, previous int)
		dfs = func(current, blackID, count, previous int) {
			visited[current] = true
			for _, neighbor := range d.Graph.SortedNeighbors(current) {
				if visited[neighbor] {
					continue
				}
				if d.Attributes.GetNodeColor(neighbor) != attrs.Black {
					if nodeToX[previous] == nodeToX[neighbor] && nodeToY[previous] == nodeToY[neighbor] {
						dfs(neighbor, blackID, count, current)
					} else {
						dfs(neighbor, blackID, count+1, current)
					}
				} else if blackID < neighbor {
					edgeCount := count
					if nodeToX[current] == nodeToX[neighbor] && nodeToY[current] == nodeToY[neighbor] {
						edgeCount--
					}
					counts = append(counts, edgeCount)
				}
			}
			delete(visited, current)
		}
		dfs(id, id, 0, id)
	}

	return counts
}

// ComputeTotalArea returns the area of the bounding box enclosing every
// node on the compacted grid.
func ComputeTotalArea(d *drawing.Drawing) int {
	nodeToX, nodeToY := drawing.ComputeNodeToIndexPosition(d.Graph, d.Attributes, drawing.DefaultGridClusterThreshold)

	ids := d.Graph.NodeIDs()
	if len(ids) == 0 {
		return 0
	}

	minX, maxX := nodeToX[ids[0]], nodeToX[ids[0]]
	minY, maxY := nodeToY[ids[0]], nodeToY[ids[0]]
	for _, id := range ids[1:] {
		x, y := nodeToX[id], nodeToY[id]
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	return (maxX - minX + 1) * (maxY - minY + 1)
}

// DoEdgesCross reports whether segments i-j and k-l cross using each
// node's position. Two parallel segments that lie on the same line and
// overlap by at least one unit count as crossing, same as a proper
// transversal intersection.
func DoEdgesCross(attributes *attrs.GraphAttributes, i, j, k, l int) bool {
	ix, iy := attributes.GetPositionX(i), attributes.GetPositionY(i)
	jx, jy := attributes.GetPositionX(j), attributes.GetPositionY(j)
	kx, ky := attributes.GetPositionX(k), attributes.GetPositionY(k)
	lx, ly := attributes.GetPositionX(l), attributes.GetPositionY(l)

	iHorizontal := iy == jy
	klHorizontal := ky == ly

	if iHorizontal && klHorizontal {
		return iy == ky && max(min(ix, jx), min(kx, lx)) < min(max(ix, jx), max(kx, lx))
	}
	if !iHorizontal && !klHorizontal {
		return ix == kx && max(min(iy, jy), min(ky, ly)) < min(max(iy, jy), max(ky, ly))
	}
	if !iHorizontal {
		return DoEdgesCross(attributes, k, l, i, j)
	}

	// i-j is horizontal, k-l is vertical: a merely touching endpoint (one
	// segment's end lying exactly on the other's line) is not a crossing.
	if ix == kx || ix == lx || jx == kx || jx == lx ||
		iy == ky || iy == ly || jy == ky || jy == ly {
		return false
	}
	if kx < min(ix, jx) || kx > max(ix, jx) {
		return false
	}
	if iy < min(ky, ly) || iy > max(ky, ly) {
		return false
	}

	return true
}

// ComputeTotalCrossings counts every pair of non-adjacent edges that cross,
// using each node's final (post-compaction) position. Two parallel
// segments that share a coordinate and overlap by at least one unit count
// as a crossing, same as two properly transversal segments.
func ComputeTotalCrossings(d *drawing.Drawing) int {
	edges := normalizedEdges(d.Graph)
	total := 0
	for a := 0; a < len(edges); a++ {
		i, j := edges[a][0], edges[a][1]
		for b := a + 1; b < len(edges); b++ {
			k, l := edges[b][0], edges[b][1]
			if i == k || i == l || j == k || j == l {
				continue
			}
			if DoEdgesCross(d.Attributes, i, j, k, l) {
				total++
			}
		}
	}

	return total
}

// normalizedEdges returns g's edges with each pair ordered (min, max), so
// every edge is visited once regardless of which endpoint Edges() lists
// first.
func normalizedEdges(g *graph.UndirectedGraph) [][2]int {
	edges := g.Edges()
	result := make([][2]int, len(edges))
	for i, e := range edges {
		if e[0] > e[1] {
			e[0], e[1] = e[1], e[0]
		}
		result[i] = e
	}

	return result
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}

	return total
}

func maxOf(values []int) int {
	m := 0
	for _, v := range values {
		if v > m {
			m = v
		}
	}

	return m
}

func stddev(values []int) float64 {
	if len(values) <= 1 {
		return 0
	}

	var mean float64
	for _, v := range values {
		mean += float64(v)
	}
	size := float64(len(values))
	mean /= size

	var variance float64
	for _, v := range values {
		diff := float64(v) - mean
		variance += diff * diff
	}
	variance /= size - 1

	return math.Sqrt(variance)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

