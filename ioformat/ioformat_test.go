package ioformat_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/orthograph/drawing"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/ioformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSquare() *graph.UndirectedGraph {
	g := graph.NewUndirectedGraph()
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 0)

	return g
}

func TestTXT_RoundTripPreservesNodesAndEdges(t *testing.T) {
	g := buildSquare()

	var buf bytes.Buffer
	require.NoError(t, ioformat.SaveTXT(&buf, g))

	loaded, err := ioformat.LoadTXT(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.NodeIDs(), loaded.NodeIDs())
	assert.Equal(t, g.Edges(), loaded.Edges())
}

func TestTXT_DuplicateNodeErrors(t *testing.T) {
	r := strings.NewReader("nodes:\n1\n1\nedges:\n")
	_, err := ioformat.LoadTXT(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ioformat.ErrDuplicateNode)
}

func TestTXT_DuplicateEdgeErrors(t *testing.T) {
	r := strings.NewReader("nodes:\n1\n2\nedges:\n1 2\n1 2\n")
	_, err := ioformat.LoadTXT(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ioformat.ErrDuplicateEdge)
}

func TestTXT_MalformedLineErrors(t *testing.T) {
	r := strings.NewReader("nodes:\nnotanumber\nedges:\n")
	_, err := ioformat.LoadTXT(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ioformat.ErrMalformedTXT)
}

func TestDrawingJSON_RoundTripPreservesGraphColorsPositionsAndShape(t *testing.T) {
	d, err := drawing.MakeOrthogonalDrawing(buildSquare())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformat.SaveDrawingJSON(&buf, d))

	loaded, err := ioformat.LoadDrawingJSON(&buf)
	require.NoError(t, err)

	assert.Equal(t, d.Graph.NodeIDs(), loaded.Graph.NodeIDs())
	assert.Equal(t, d.Graph.Edges(), loaded.Graph.Edges())

	for _, id := range d.Graph.NodeIDs() {
		assert.Equal(t, d.Attributes.GetPositionX(id), loaded.Attributes.GetPositionX(id))
		assert.Equal(t, d.Attributes.GetPositionY(id), loaded.Attributes.GetPositionY(id))
	}

	for _, e := range d.Graph.Edges() {
		want, ok := d.Shape.GetDirection(e[0], e[1])
		require.True(t, ok)
		got, ok := loaded.Shape.GetDirection(e[0], e[1])
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestDrawingJSON_UnknownColorErrors(t *testing.T) {
	r := strings.NewReader(`{"nodes":[0],"edges":[],"node_colors":{"0":"magenta"},"node_positions":{"0":[0,0]},"shape":[]}`)
	_, err := ioformat.LoadDrawingJSON(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ioformat.ErrUnknownColor)
}

func TestSaveGraphML_ProducesWellFormedNodesAndEdges(t *testing.T) {
	d, err := drawing.MakeOrthogonalDrawing(buildSquare())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformat.SaveGraphML(&buf, d))

	out := buf.String()
	assert.Contains(t, out, "<graphml")
	assert.Contains(t, out, `attr.name="color"`)
	for _, id := range d.Graph.NodeIDs() {
		assert.Contains(t, out, `id="n`+strconv.Itoa(id)+`"`)
	}
}

func TestSaveSVG_ProducesOneRectPerOriginalNode(t *testing.T) {
	d, err := drawing.MakeOrthogonalDrawing(buildSquare())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformat.SaveSVG(&buf, d))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 4, strings.Count(out, "<rect"))
}

