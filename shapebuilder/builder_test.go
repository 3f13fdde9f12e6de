package shapebuilder_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/graphalgo"
	"github.com/katalvlaran/orthograph/graphgen"
	"github.com/katalvlaran/orthograph/satcnf"
	"github.com/katalvlaran/orthograph/satoracle"
	"github.com/katalvlaran/orthograph/satoracle/dpll"
	"github.com/katalvlaran/orthograph/shapebuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extensionVariableOracle wraps a real oracle and, on every UNSAT result,
// appends a unit clause naming a variable far outside the handed CNF's
// range, simulating a DRAT-emitting solver that introduces its own
// extension variables into the proof.
type extensionVariableOracle struct {
	real satoracle.Oracle
}

func (o extensionVariableOracle) Solve(cnf *satcnf.Cnf) (*satoracle.Result, error) {
	result, err := o.real.Solve(cnf)
	if err != nil || result.SAT {
		return result, err
	}

	proof := make([]string, len(result.ProofLines), len(result.ProofLines)+1)
	copy(proof, result.ProofLines)
	proof = append(proof, "1000000 0")

	return &satoracle.Result{SAT: false, ProofLines: proof}, nil
}

func buildSquare() (*graph.UndirectedGraph, []*cycle.Cycle) {
	g := graph.NewUndirectedGraph()
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)

	cycles, err := graphalgo.ComputeCycleBasis(g)
	if err != nil {
		panic(err)
	}

	return g, cycles
}

func TestBuildShape_SquareProducesAShapeForEveryEdge(t *testing.T) {
	g, cycles := buildSquare()
	attributes := attrs.New()

	sh, err := shapebuilder.BuildShape(g, attributes, cycles, dpll.New())
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.True(t, sh.Contains(e[0], e[1]) || sh.Contains(e[1], e[0]))
	}
}

func TestBuildShape_CnfLogSinkReceivesEncodedInstance(t *testing.T) {
	g, cycles := buildSquare()
	attributes := attrs.New()
	var cnfLog bytes.Buffer

	_, err := shapebuilder.BuildShape(g, attributes, cycles, dpll.New(), shapebuilder.WithCnfLogSink(&cnfLog))
	require.NoError(t, err)
	assert.NotEmpty(t, cnfLog.String())
}

func TestBuildShape_IgnoresOutOfRangeProofVariable(t *testing.T) {
	// A bare triangle cannot be realized as a rectilinear polygon (closing
	// one requires at least four turns), so its first CNF is guaranteed
	// UNSAT and at least one corner split is required: exactly the path
	// that walks through findEdgeToSplit's proof scan.
	g, err := graphgen.Cycle(3)
	require.NoError(t, err)
	cycles, err := graphalgo.ComputeCycleBasis(g)
	require.NoError(t, err)

	attributes := attrs.New()
	oracle := extensionVariableOracle{real: dpll.New()}

	sh, err := shapebuilder.BuildShape(g, attributes, cycles, oracle)
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.True(t, sh.Contains(e[0], e[1]) || sh.Contains(e[1], e[0]))
	}
}

func TestBuildShapeConcurrent_RunsIndependentJobs(t *testing.T) {
	g1, cycles1 := buildSquare()
	g2, cycles2 := buildSquare()

	jobs := []shapebuilder.Job{
		{Graph: g1, Attributes: attrs.New(), Cycles: cycles1, Oracle: dpll.New()},
		{Graph: g2, Attributes: attrs.New(), Cycles: cycles2, Oracle: dpll.New()},
	}

	shapes, err := shapebuilder.BuildShapeConcurrent(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, shapes, 2)
	assert.NotNil(t, shapes[0])
	assert.NotNil(t, shapes[1])
}
