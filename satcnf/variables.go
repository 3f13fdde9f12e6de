package satcnf

import (
	"fmt"

	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/shape"
)

// VariablesHandler allocates four CNF variables per undirected edge, one
// per compass direction, and canonicalizes (u,v,direction) lookups so that
// (u,v,d) and (v,u,Opposite(d)) resolve to the same variable: a single
// boolean describes the segment's orientation, regardless of which
// endpoint the caller names first.
//
// Not safe for concurrent use.
type VariablesHandler struct {
	// variable[{u,v}][d] is the CNF variable for direction d as seen from
	// the canonical lesser endpoint u towards v, u < v.
	variable map[[2]int][4]int
	edgeOf   map[int][2]int
	value    map[int]bool
	next     int
}

// BuildVariablesHandler allocates variables for every edge of g.
func BuildVariablesHandler(g *graph.UndirectedGraph) *VariablesHandler {
	h := &VariablesHandler{
		variable: make(map[[2]int][4]int),
		edgeOf:   make(map[int][2]int),
		value:    make(map[int]bool),
		next:     1,
	}
	for _, e := range g.Edges() { // u < v, sorted: deterministic allocation order
		var vars [4]int
		for _, d := range shape.AllDirections() {
			vars[d] = h.next
			h.edgeOf[h.next] = e
			h.next++
		}
		h.variable[e] = vars
	}

	return h
}

func canonical(a, b int) (u, v int, swapped bool) {
	if a <= b {
		return a, b, false
	}

	return b, a, true
}

// GetVariable returns the CNF variable representing "the segment from a to
// b runs in direction d". Returns (0, ErrUnknownEdge) if {a,b} was not an
// edge of the graph the handler was built from.
func (h *VariablesHandler) GetVariable(a, b int, d shape.Direction) (int, error) {
	u, v, swapped := canonical(a, b)
	vars, ok := h.variable[[2]int{u, v}]
	if !ok {
		return 0, fmt.Errorf("GetVariable(%d,%d): %w", a, b, ErrUnknownEdge)
	}
	if swapped {
		d = shape.Opposite(d)
	}

	return vars[d], nil
}

// GetUpVariable, GetDownVariable, GetRightVariable, GetLeftVariable are
// convenience wrappers around GetVariable; they panic on an unknown edge,
// matching how clause-construction call sites only ever pass edges taken
// directly from the graph's own adjacency.
func (h *VariablesHandler) GetUpVariable(a, b int) int    { return h.must(a, b, shape.Up) }
func (h *VariablesHandler) GetDownVariable(a, b int) int  { return h.must(a, b, shape.Down) }
func (h *VariablesHandler) GetRightVariable(a, b int) int { return h.must(a, b, shape.Right) }
func (h *VariablesHandler) GetLeftVariable(a, b int) int  { return h.must(a, b, shape.Left) }

func (h *VariablesHandler) must(a, b int, d shape.Direction) int {
	v, err := h.GetVariable(a, b, d)
	if err != nil {
		panic(err)
	}

	return v
}

// GetEdgeOfVariable reverse-looks-up the canonical edge endpoints {u,v},
// u < v, that variable was allocated for.
func (h *VariablesHandler) GetEdgeOfVariable(variable int) (int, int, error) {
	e, ok := h.edgeOf[variable]
	if !ok {
		return 0, 0, fmt.Errorf("GetEdgeOfVariable(%d): %w", variable, ErrUnknownVariable)
	}

	return e[0], e[1], nil
}

// SetVariableValue records the SAT solver's truth assignment for variable.
func (h *VariablesHandler) SetVariableValue(variable int, value bool) {
	h.value[variable] = value
}

// GetDirectionOfEdge returns the direction the segment from a to b was
// assigned, once SetVariableValue has recorded the solver's assignment for
// all four of {a,b}'s variables. Returns ErrUnknownEdge if {a,b} was not an
// edge, or a zero Direction and false if no direction came back true (a
// malformed assignment).
func (h *VariablesHandler) GetDirectionOfEdge(a, b int) (shape.Direction, bool, error) {
	u, v, swapped := canonical(a, b)
	vars, ok := h.variable[[2]int{u, v}]
	if !ok {
		return 0, false, fmt.Errorf("GetDirectionOfEdge(%d,%d): %w", a, b, ErrUnknownEdge)
	}
	for _, d := range shape.AllDirections() {
		if h.value[vars[d]] {
			if swapped {
				return shape.Opposite(d), true, nil
			}

			return d, true, nil
		}
	}

	return 0, false, nil
}

// NumVars returns the total number of variables allocated.
func (h *VariablesHandler) NumVars() int { return h.next - 1 }
