package graphalgo_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/graphalgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare returns a 4-cycle 0-1-2-3-0.
func buildSquare() *graph.UndirectedGraph {
	g := graph.NewUndirectedGraph()
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)

	return g
}

func TestIsConnected(t *testing.T) {
	g := buildSquare()
	assert.True(t, graphalgo.IsConnected(g))

	isolated := g.AddNode()
	assert.False(t, graphalgo.IsConnected(g))
	_ = isolated
}

func TestBuildSpanningTree_NotConnected(t *testing.T) {
	g := buildSquare()
	g.AddNode()

	_, err := graphalgo.BuildSpanningTree(g)
	assert.True(t, errors.Is(err, graphalgo.ErrNotConnected))
}

func TestComputeCycleBasis_SquareHasOneCycle(t *testing.T) {
	g := buildSquare()
	cycles, err := graphalgo.ComputeCycleBasis(g)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, 4, cycles[0].Len())
}

func TestTopologicalOrder_DetectsCycle(t *testing.T) {
	g := graph.NewDirectedGraph()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddArc(a, b)
	g.AddArc(b, c)
	g.AddArc(c, a)

	_, err := graphalgo.TopologicalOrder(g)
	assert.True(t, errors.Is(err, graphalgo.ErrHasCycle))
}

func TestTopologicalOrder_DiamondRespectsArcs(t *testing.T) {
	g := graph.NewDirectedGraph()
	a, b, c, d := g.AddNode(), g.AddNode(), g.AddNode(), g.AddNode()
	g.AddArc(a, b)
	g.AddArc(a, c)
	g.AddArc(b, d)
	g.AddArc(c, d)

	order, err := graphalgo.TopologicalOrder(g)
	require.NoError(t, err)
	pos := make(map[int]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos[a], pos[b])
	assert.Less(t, pos[a], pos[c])
	assert.Less(t, pos[b], pos[d])
	assert.Less(t, pos[c], pos[d])
}

func TestFindCycleUndirected_SquareFindsFullCycle(t *testing.T) {
	g := buildSquare()
	c, ok := graphalgo.FindCycleUndirected(g)
	require.True(t, ok)
	assert.Equal(t, 4, c.Len())
}

func TestFindCycleUndirected_TreeHasNone(t *testing.T) {
	g := graph.NewUndirectedGraph()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	_, ok := graphalgo.FindCycleUndirected(g)
	assert.False(t, ok)
}

func TestFindCycleDirected(t *testing.T) {
	g := graph.NewDirectedGraph()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddArc(a, b)
	g.AddArc(b, c)
	g.AddArc(c, a)

	cyc, ok := graphalgo.FindCycleDirected(g)
	require.True(t, ok)
	assert.Equal(t, 3, cyc.Len())
}

func TestComputeBiconnectedComponents_SquareHasNoCutVertex(t *testing.T) {
	g := buildSquare()
	bcc := graphalgo.ComputeBiconnectedComponents(g)
	assert.Empty(t, bcc.SortedCutVertices())
	require.Len(t, bcc.Components, 1)
}

func TestComputeBiconnectedComponents_BridgeCreatesCutVertex(t *testing.T) {
	g := buildSquare()
	bridgeNode := g.AddNode()
	leaf := g.AddNode()
	g.AddEdge(0, bridgeNode)
	g.AddEdge(bridgeNode, leaf)

	bcc := graphalgo.ComputeBiconnectedComponents(g)
	assert.Contains(t, bcc.SortedCutVertices(), bridgeNode)
	assert.Contains(t, bcc.SortedCutVertices(), 0)
}

func TestComputeBipartition(t *testing.T) {
	g := buildSquare()
	colors, ok := graphalgo.ComputeBipartition(g)
	require.True(t, ok)
	assert.NotEqual(t, colors[0], colors[1])
	assert.Equal(t, colors[0], colors[2])

	g.AddEdge(0, 2) // diagonal closes an odd cycle
	_, ok = graphalgo.ComputeBipartition(g)
	assert.False(t, ok)
}
