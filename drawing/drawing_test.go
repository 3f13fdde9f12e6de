package drawing_test

import (
	"testing"

	"github.com/katalvlaran/orthograph/drawing"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/graphalgo"
	"github.com/katalvlaran/orthograph/graphgen"
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

func TestMakeOrthogonalDrawing_SquareAssignsEveryNodeAPosition(t *testing.T) {
	g := buildSquare()

	result, err := drawing.MakeOrthogonalDrawing(g)
	require.NoError(t, err)
	require.NotNil(t, result)

	for _, id := range result.Graph.NodeIDs() {
		assert.True(t, result.Attributes.HasPosition(id))
	}
	assert.GreaterOrEqual(t, result.Graph.Size(), g.Size())
}

func TestMakeOrthogonalDrawing_NotConnectedReturnsError(t *testing.T) {
	g := graph.NewUndirectedGraph()
	g.AddNode()
	g.AddNode()

	_, err := drawing.MakeOrthogonalDrawing(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphalgo.ErrNotConnected)
}

func TestMakeOrthogonalDrawing_HighDegreeNodeProducesPositions(t *testing.T) {
	g := graph.NewUndirectedGraph()
	center := g.AddNode()
	for i := 0; i < 5; i++ {
		leaf := g.AddNode()
		_ = g.AddEdge(center, leaf)
	}

	result, err := drawing.MakeOrthogonalDrawing(g)
	require.NoError(t, err)
	require.NotNil(t, result)

	for _, id := range result.Graph.NodeIDs() {
		assert.True(t, result.Attributes.HasPosition(id))
	}
}

func TestMakeOrthogonalDrawing_RespectsClassSpacingOption(t *testing.T) {
	g := buildSquare()

	result, err := drawing.MakeOrthogonalDrawing(g, drawing.WithClassSpacing(50))
	require.NoError(t, err)
	require.NotNil(t, result)

	xs := make([]int, 0, result.Graph.Size())
	for _, id := range result.Graph.NodeIDs() {
		x, y := result.Attributes.GetPositionX(id), result.Attributes.GetPositionY(id)
		assert.Zero(t, x%50)
		assert.Zero(t, y%50)
		xs = append(xs, x)
	}
	assert.Contains(t, xs, 50, "the second grid column sits one ClassSpacing from the first")
}
