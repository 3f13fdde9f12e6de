package graph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthograph/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectedGraph_ArcLifecycle(t *testing.T) {
	g := graph.NewDirectedGraph()
	a := g.AddNode()
	b := g.AddNode()

	require.NoError(t, g.AddArc(a, b))
	assert.True(t, g.HasArc(a, b))
	assert.False(t, g.HasArc(b, a), "arcs are one-directional")
	assert.Equal(t, 1, g.OutDegree(a))
	assert.Equal(t, 1, g.InDegree(b))
	assert.Equal(t, 1, g.ArcCount())

	err := g.AddArc(a, b)
	assert.True(t, errors.Is(err, graph.ErrEdgeExists))

	err = g.AddArc(a, a)
	assert.True(t, errors.Is(err, graph.ErrSelfLoop))
}

func TestDirectedGraph_NodeIDsSorted(t *testing.T) {
	g := graph.NewDirectedGraph()
	g.EnsureNode(7)
	g.EnsureNode(2)
	g.EnsureNode(9)
	assert.Equal(t, []int{2, 7, 9}, g.NodeIDs())
}
