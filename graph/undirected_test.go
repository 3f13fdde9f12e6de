package graph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthograph/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndirectedGraph_AddNodeEdgeLifecycle(t *testing.T) {
	g := graph.NewUndirectedGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	require.NotEqual(t, a, b)

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))
	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a), "undirected edges are symmetric")
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, g.Degree(a))
	assert.Equal(t, 2, g.Degree(b))

	err := g.AddEdge(a, b)
	assert.True(t, errors.Is(err, graph.ErrEdgeExists))

	err = g.AddEdge(a, a)
	assert.True(t, errors.Is(err, graph.ErrSelfLoop))

	require.NoError(t, g.RemoveNode(b))
	assert.False(t, g.HasNode(b))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.Degree(a))
}

func TestUndirectedGraph_EnsureNodeAdvancesCursor(t *testing.T) {
	g := graph.NewUndirectedGraph()
	require.NoError(t, g.EnsureNode(5))
	next := g.AddNode()
	assert.Equal(t, 6, next)

	err := g.EnsureNode(5)
	assert.True(t, errors.Is(err, graph.ErrNodeExists))
}

func TestUndirectedGraph_EdgesSortedDeterministic(t *testing.T) {
	g := graph.NewUndirectedGraph()
	n := make([]int, 4)
	for i := range n {
		n[i] = g.AddNode()
	}
	require.NoError(t, g.AddEdge(n[3], n[1]))
	require.NoError(t, g.AddEdge(n[0], n[2]))

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, [2]int{n[0], n[2]}, edges[0])
	assert.Equal(t, [2]int{n[1], n[3]}, edges[1])
}

func TestUndirectedGraph_CloneIsIndependent(t *testing.T) {
	g := graph.NewUndirectedGraph()
	a, b := g.AddNode(), g.AddNode()
	require.NoError(t, g.AddEdge(a, b))

	clone := g.Clone()
	require.NoError(t, clone.RemoveEdge(a, b))
	assert.True(t, g.HasEdge(a, b), "mutating the clone must not affect the original")
	assert.False(t, clone.HasEdge(a, b))
}

func TestUndirectedGraph_MaxDegree(t *testing.T) {
	g := graph.NewUndirectedGraph()
	center := g.AddNode()
	for i := 0; i < 5; i++ {
		leaf := g.AddNode()
		require.NoError(t, g.AddEdge(center, leaf))
	}
	assert.Equal(t, 5, g.MaxDegree())
}
