package satcnf_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/satcnf"
	"github.com/katalvlaran/orthograph/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCnf_StringFormat(t *testing.T) {
	cnf := satcnf.NewCnf()
	cnf.AddComment("hello")
	cnf.AddClause(1, -2, 3)

	out := cnf.String()
	assert.True(t, strings.HasPrefix(out, "p cnf 3 1\n"))
	assert.Contains(t, out, "c hello\n")
	assert.Contains(t, out, "1 -2 3 0\n")
	assert.Equal(t, 3, cnf.NumVars())
	assert.Equal(t, 1, cnf.NumClauses())
}

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

func TestVariablesHandler_CanonicalOppositeLookup(t *testing.T) {
	g := buildSquare()
	h := satcnf.BuildVariablesHandler(g)

	up01, err := h.GetVariable(0, 1, shape.Up)
	require.NoError(t, err)
	down10, err := h.GetVariable(1, 0, shape.Down)
	require.NoError(t, err)
	assert.Equal(t, up01, down10, "(0,1,UP) and (1,0,DOWN) describe the same segment")

	_, _, err = h.GetEdgeOfVariable(up01)
	require.NoError(t, err)

	_, err = h.GetVariable(0, 2, shape.Up)
	assert.Error(t, err)
}

func TestVariablesHandler_DirectionRoundTrip(t *testing.T) {
	g := buildSquare()
	h := satcnf.BuildVariablesHandler(g)

	v := h.GetRightVariable(0, 1)
	h.SetVariableValue(v, true)

	d, ok, err := h.GetDirectionOfEdge(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, shape.Right, d)

	dRev, ok, err := h.GetDirectionOfEdge(1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, shape.Left, dRev)
}

func TestAddConstraintsOneDirectionPerEdge_ProducesSevenClausesPerEdge(t *testing.T) {
	g := buildSquare()
	h := satcnf.BuildVariablesHandler(g)
	cnf := satcnf.NewCnf()
	satcnf.AddConstraintsOneDirectionPerEdge(cnf, g, h)
	assert.Equal(t, 4*7, cnf.NumClauses())
}

func TestAddNodesConstraints_Degree2NodeGetsAtMostOneClause(t *testing.T) {
	g := buildSquare() // every node has degree 2 in a 4-cycle
	h := satcnf.BuildVariablesHandler(g)
	cnf := satcnf.NewCnf()
	require.NoError(t, satcnf.AddNodesConstraints(cnf, g, h))
	assert.Equal(t, 4*4, cnf.NumClauses()) // 4 nodes * 4 directions * 1 clause each
}

func TestAddCyclesConstraints(t *testing.T) {
	g := buildSquare()
	h := satcnf.BuildVariablesHandler(g)
	cnf := satcnf.NewCnf()
	c := cycle.New([]int{0, 1, 2, 3})
	satcnf.AddCyclesConstraints(cnf, []*cycle.Cycle{c}, h)
	assert.Equal(t, 4, cnf.NumClauses())
}
