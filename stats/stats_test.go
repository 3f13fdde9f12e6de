package stats_test

import (
	"testing"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/drawing"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/graphgen"
	"github.com/katalvlaran/orthograph/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSquare() *graph.UndirectedGraph {
	g, err := graphgen.Cycle(4)
	if err != nil {
		panic(err)
	}

	return g
}

func TestComputeAllOrthogonalStats_SquareHasFourEdgesNoBendsNoCrossings(t *testing.T) {
	d, err := drawing.MakeOrthogonalDrawing(buildSquare())
	require.NoError(t, err)

	edgeLengths := stats.ComputeEdgeLengths(d)
	assert.Len(t, edgeLengths, 4)

	bendsCounts := stats.ComputeBendsCounts(d)
	assert.Len(t, bendsCounts, 4)
	for _, c := range bendsCounts {
		assert.Zero(t, c)
	}

	all := stats.ComputeAllOrthogonalStats(d)
	assert.Zero(t, all.TotalBends)
	assert.Zero(t, all.TotalCrossings)
	assert.Positive(t, all.TotalArea)
	assert.Positive(t, all.TotalEdgeLength)
}

func TestComputeAllOrthogonalStats_HighDegreeNodeHasNoSelfCrossings(t *testing.T) {
	g := graph.NewUndirectedGraph()
	center := g.AddNode()
	for i := 0; i < 5; i++ {
		leaf := g.AddNode()
		_ = g.AddEdge(center, leaf)
	}

	d, err := drawing.MakeOrthogonalDrawing(g)
	require.NoError(t, err)

	edgeLengths := stats.ComputeEdgeLengths(d)
	assert.Len(t, edgeLengths, 5)

	all := stats.ComputeAllOrthogonalStats(d)
	assert.Zero(t, all.TotalCrossings)
}

func positionedAttributes(positions map[int][2]int) *attrs.GraphAttributes {
	a := attrs.New()
	for id, pos := range positions {
		a.SetPosition(id, pos[0], pos[1])
	}

	return a
}

func TestDoEdgesCross_PerpendicularOverlappingSegmentsCross(t *testing.T) {
	a := positionedAttributes(map[int][2]int{0: {0, 0}, 1: {2, 0}, 2: {1, -1}, 3: {1, 1}})

	assert.True(t, stats.DoEdgesCross(a, 0, 1, 2, 3))
}

func TestDoEdgesCross_ParallelSegmentsOnDifferentLinesNeverCross(t *testing.T) {
	a := positionedAttributes(map[int][2]int{0: {0, 0}, 1: {2, 0}, 2: {0, 1}, 3: {2, 1}})

	assert.False(t, stats.DoEdgesCross(a, 0, 1, 2, 3))
}

func TestDoEdgesCross_SharedEndpointDoesNotCross(t *testing.T) {
	a := positionedAttributes(map[int][2]int{0: {0, 0}, 1: {2, 0}, 2: {1, 1}})

	assert.False(t, stats.DoEdgesCross(a, 0, 1, 0, 2))
}

func TestDoEdgesCross_CollinearOverlappingHorizontalSegmentsCross(t *testing.T) {
	// 0-1 spans x in [0,3] at y=0; 2-3 spans x in [2,5] at the same y: the
	// segments are parallel, collinear, and overlap between x=2 and x=3.
	a := positionedAttributes(map[int][2]int{0: {0, 0}, 1: {3, 0}, 2: {2, 0}, 3: {5, 0}})

	assert.True(t, stats.DoEdgesCross(a, 0, 1, 2, 3))
}

func TestDoEdgesCross_CollinearNonOverlappingHorizontalSegmentsDoNotCross(t *testing.T) {
	a := positionedAttributes(map[int][2]int{0: {0, 0}, 1: {2, 0}, 2: {5, 0}, 3: {7, 0}})

	assert.False(t, stats.DoEdgesCross(a, 0, 1, 2, 3))
}

func TestDoEdgesCross_CollinearOverlappingVerticalSegmentsCross(t *testing.T) {
	a := positionedAttributes(map[int][2]int{0: {0, 0}, 1: {0, 3}, 2: {0, 2}, 3: {0, 5}})

	assert.True(t, stats.DoEdgesCross(a, 0, 1, 2, 3))
}
