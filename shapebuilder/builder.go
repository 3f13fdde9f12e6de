package shapebuilder

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	mrand "math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/satcnf"
	"github.com/katalvlaran/orthograph/satoracle"
	"github.com/katalvlaran/orthograph/shape"
)

// BuildShape repeatedly encodes g and cycles as CNF, hands it to oracle,
// and on UNSAT splits one edge with a RED corner node, until a
// satisfying assignment yields a Shape. g, attributes, and cycles are all
// mutated in place by edge splits: a split adds no cycle to the slice but
// lengthens every cycle that runs along the split edge.
func BuildShape(
	g *graph.UndirectedGraph,
	attributes *attrs.GraphAttributes,
	cycles []*cycle.Cycle,
	oracle satoracle.Oracle,
	opts ...Option,
) (*shape.Shape, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rng := mrand.New(mrand.NewSource(seedFor(o.randomized)))

	for i := 0; i < o.maxIterations; i++ {
		sh, ok, err := buildShapeOrAddCorner(g, attributes, cycles, oracle, rng, o)
		if err != nil {
			return nil, err
		}
		if ok {
			return sh, nil
		}
	}

	return nil, ErrMaxIterationsExceeded
}

func seedFor(randomized bool) int64 {
	if !randomized {
		return 42
	}
	n, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	if err != nil {
		// crypto/rand failure is exceptional; fall back to one direct read
		// of 8 random bytes (all zero if that read fails too) rather than
		// fail shape construction over it.
		var buf [8]byte
		_, _ = rand.Read(buf[:])

		return int64(binary.LittleEndian.Uint64(buf[:]))
	}

	return n.Int64()
}

// buildShapeOrAddCorner runs one iteration: encode, solve, and either
// return the resulting Shape (ok=true) or mutate g/attributes/cycles by
// splitting one edge and report ok=false to try again.
func buildShapeOrAddCorner(
	g *graph.UndirectedGraph,
	attributes *attrs.GraphAttributes,
	cycles []*cycle.Cycle,
	oracle satoracle.Oracle,
	rng *mrand.Rand,
	o options,
) (*shape.Shape, bool, error) {
	handler := satcnf.BuildVariablesHandler(g)
	cnf := satcnf.NewCnf()

	cnf.AddComment("constraints one direction per edge")
	satcnf.AddConstraintsOneDirectionPerEdge(cnf, g, handler)

	cnf.AddComment("constraints nodes")
	if err := satcnf.AddNodesConstraints(cnf, g, handler); err != nil {
		return nil, false, err
	}

	cnf.AddComment("constraints cycles")
	satcnf.AddCyclesConstraints(cnf, cycles, handler)

	logCnf(o.cnfLog, cnf.String())

	result, err := oracle.Solve(cnf)
	if err != nil {
		return nil, false, fmt.Errorf("shapebuilder: oracle.Solve: %w", err)
	}

	if !result.SAT {
		from, to, literals, err := findEdgeToSplit(result.ProofLines, rng, handler)
		if err != nil {
			return nil, false, err
		}
		logUnitClauses(o.unitClausesLog, literals)
		addCornerInsideEdge(from, to, g, attributes, cycles)

		return nil, false, nil
	}

	return resultToShape(g, result.Assignment, handler), true, nil
}

// resultToShape replays the oracle's assignment into handler and reads off
// every edge's direction to build the final Shape.
func resultToShape(g *graph.UndirectedGraph, numbers []int, handler *satcnf.VariablesHandler) *shape.Shape {
	for _, n := range numbers {
		if n > 0 {
			handler.SetVariableValue(n, true)
		} else {
			handler.SetVariableValue(-n, false)
		}
	}

	sh := shape.New()
	for _, u := range g.NodeIDs() {
		for _, v := range g.SortedNeighbors(u) {
			d, ok, err := handler.GetDirectionOfEdge(u, v)
			if ok && err == nil {
				sh.SetDirection(u, v, d)
			}
		}
	}

	return sh
}

// addCornerInsideEdge inserts a fresh RED node between from and to: it
// replaces the (from,to) edge with (from,new) and (to,new), and splices
// new into every cycle that has from and to adjacent.
func addCornerInsideEdge(
	from, to int,
	g *graph.UndirectedGraph,
	attributes *attrs.GraphAttributes,
	cycles []*cycle.Cycle,
) {
	newID := g.AddNode()
	attributes.SetNodeColor(newID, attrs.Red)
	_ = g.RemoveEdge(from, to)
	_ = g.AddEdge(from, newID)
	_ = g.AddEdge(to, newID)

	for _, c := range cycles {
		c.AddBetween(from, to, newID)
	}
}

// findEdgeToSplit scans an UNSAT proof backwards for unit clauses, picks
// one of the first min(2, count) uniformly at random, and maps the
// variable it names back to the edge it was allocated for.
func findEdgeToSplit(
	proofLines []string, rng *mrand.Rand, handler *satcnf.VariablesHandler,
) (int, int, []int, error) {
	var unitClauses []int
	for i := len(proofLines) - 1; i >= 0; i-- {
		line := strings.ReplaceAll(proofLines[i], "d", "")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		tokens := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				continue
			}
			tokens = append(tokens, v)
		}
		if len(tokens) == 0 || tokens[len(tokens)-1] != 0 {
			continue
		}
		literals := tokens[:len(tokens)-1]
		if len(literals) == 1 {
			unitClauses = append(unitClauses, literals[0])
		}
	}

	// A real DRAT-emitting solver may introduce extension variables beyond
	// the CNF we handed it; only handler's own variables map back to an
	// edge, so anything outside that range can never be split on.
	numVars := handler.NumVars()
	inRange := unitClauses[:0]
	for _, v := range unitClauses {
		if abs(v) <= numVars {
			inRange = append(inRange, v)
		}
	}
	unitClauses = inRange

	if len(unitClauses) == 0 {
		return 0, 0, nil, ErrNoUnitClause
	}

	pick := unitClauses[rng.Intn(min(2, len(unitClauses)))]
	variable := pick
	if variable < 0 {
		variable = -variable
	}

	from, to, err := handler.GetEdgeOfVariable(variable)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("findEdgeToSplit: %w", err)
	}

	return from, to, unitClauses, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
