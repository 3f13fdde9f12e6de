package satcnf

import (
	"fmt"

	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/shape"
)

// AddConstraintsOneDirectionPerEdge emits, for every edge {u,v} with u<v,
// an at-least-one clause over its four direction variables and six
// pairwise at-most-one clauses, together encoding "exactly one direction".
func AddConstraintsOneDirectionPerEdge(cnf *Cnf, g *graph.UndirectedGraph, h *VariablesHandler) {
	for _, e := range g.Edges() {
		up := h.GetUpVariable(e[0], e[1])
		down := h.GetDownVariable(e[0], e[1])
		right := h.GetRightVariable(e[0], e[1])
		left := h.GetLeftVariable(e[0], e[1])
		addExactlyOne(cnf, up, down, right, left)
	}
}

func addExactlyOne(cnf *Cnf, a, b, c, d int) {
	cnf.AddClause(a, b, c, d)
	cnf.AddClause(-a, -b)
	cnf.AddClause(-a, -c)
	cnf.AddClause(-a, -d)
	cnf.AddClause(-b, -c)
	cnf.AddClause(-b, -d)
	cnf.AddClause(-c, -d)
}

// addAtLeastOneInDirection emits a single at-least-one clause over node's
// incident edges' variable for direction d.
func addAtLeastOneInDirection(
	cnf *Cnf, g *graph.UndirectedGraph, h *VariablesHandler, node int, d shape.Direction,
) {
	literals := make([]int, 0, g.Degree(node))
	for _, nbr := range g.SortedNeighbors(node) {
		v, _ := h.GetVariable(node, nbr, d)
		literals = append(literals, v)
	}
	cnf.AddClause(literals...)
}

// addOneEdgePerDirectionClauses emits node's constraint for a single
// direction d, branching on degree: degree 4 gets an at-least-one clause
// (the one-direction-per-edge encoding already forces at-most-one across
// all four directions combined, so at a degree-4 node exactly one edge
// takes each direction once at-least-one is also true for all four);
// degree 3 and 2 get explicit at-most-one clauses since one direction may
// legitimately go unused; degree 1 has nothing to constrain.
func addOneEdgePerDirectionClauses(
	cnf *Cnf, g *graph.UndirectedGraph, h *VariablesHandler, node int, d shape.Direction,
) error {
	switch degree := g.Degree(node); degree {
	case 4:
		addAtLeastOneInDirection(cnf, g, h, node, d)
	case 3:
		vars := make([]int, 0, 3)
		for _, nbr := range g.SortedNeighbors(node) {
			v, _ := h.GetVariable(node, nbr, d)
			vars = append(vars, v)
		}
		cnf.AddClause(-vars[0], -vars[1])
		cnf.AddClause(-vars[0], -vars[2])
		cnf.AddClause(-vars[1], -vars[2])
	case 2:
		vars := make([]int, 0, 2)
		for _, nbr := range g.SortedNeighbors(node) {
			v, _ := h.GetVariable(node, nbr, d)
			vars = append(vars, -v)
		}
		cnf.AddClause(vars...)
	case 1:
		// nothing to constrain: the lone edge may freely take any direction.
	default:
		return fmt.Errorf("node %d has degree %d: %w", node, degree, ErrInvalidDegree)
	}

	return nil
}

// AddNodesConstraints emits, for every node, the per-direction fan-out
// clauses from addOneEdgePerDirectionClauses for degree <= 4, or a bare
// at-least-one-per-direction clause for degree > 4 (a node about to be
// split by degree>4 expansion only needs every direction represented at
// least once; exclusivity is restored after expansion introduces helper
// nodes of degree <= 4).
func AddNodesConstraints(cnf *Cnf, g *graph.UndirectedGraph, h *VariablesHandler) error {
	for _, node := range g.NodeIDs() {
		if g.Degree(node) <= 4 {
			for _, d := range shape.AllDirections() {
				if err := addOneEdgePerDirectionClauses(cnf, g, h, node, d); err != nil {
					return err
				}
			}
		} else {
			for _, d := range shape.AllDirections() {
				addAtLeastOneInDirection(cnf, g, h, node, d)
			}
		}
	}

	return nil
}

// AddCyclesConstraints emits, for every cycle in cycles, four at-least-one
// clauses (one per direction) over the directions of its consecutive
// edges, forcing the cycle to turn in all four compass directions at
// least once and so keep its enclosed face rectangular.
func AddCyclesConstraints(cnf *Cnf, cycles []*cycle.Cycle, h *VariablesHandler) {
	for _, c := range cycles {
		var down, up, right, left []int
		for _, node := range c.Nodes() {
			next, err := c.NextOf(node)
			if err != nil {
				continue
			}
			down = append(down, h.GetDownVariable(node, next))
			up = append(up, h.GetUpVariable(node, next))
			right = append(right, h.GetRightVariable(node, next))
			left = append(left, h.GetLeftVariable(node, next))
		}
		cnf.AddClause(down...)
		cnf.AddClause(up...)
		cnf.AddClause(right...)
		cnf.AddClause(left...)
	}
}
