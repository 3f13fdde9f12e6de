package equivclass

import (
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/shape"
)

// EquivalenceClassesToOrdering builds the two ordering DAGs that
// coordinate assignment topologically sorts: orderingX has one node per
// x-class and an arc classU->classV whenever some RIGHT-directed
// incidence (u,v) in sh has u in classU and v in classV; orderingY is the
// same construction over y-classes using UP-directed incidences.
//
// Duplicate arcs between the same class pair are collapsed to one; the
// witness maps record, for each emitted arc, one (u,v) node incidence
// that produced it (for diagnostics and drawing reconstruction).
func EquivalenceClassesToOrdering(
	classesX, classesY *EquivalenceClasses,
	g *graph.UndirectedGraph,
	sh *shape.Shape,
) (orderingX, orderingY *graph.DirectedGraph, witnessX, witnessY map[[2]int][2]int) {
	orderingX = graph.NewDirectedGraph()
	orderingY = graph.NewDirectedGraph()
	witnessX = make(map[[2]int][2]int)
	witnessY = make(map[[2]int][2]int)

	for _, classID := range classesX.AllClasses() {
		orderingX.EnsureNode(classID)
	}
	for _, classID := range classesY.AllClasses() {
		orderingY.EnsureNode(classID)
	}

	for _, u := range g.NodeIDs() {
		for _, v := range g.SortedNeighbors(u) {
			switch {
			case sh.IsRight(u, v):
				addOrderingArc(orderingX, classesX, witnessX, u, v)
			case sh.IsUp(u, v):
				addOrderingArc(orderingY, classesY, witnessY, u, v)
			}
		}
	}

	return orderingX, orderingY, witnessX, witnessY
}

// addOrderingArc records the class-level arc for node incidence (u,v), if
// it is new and not a same-class self-arc. A same-class arc can arise
// when u and v are adjacent along the class's own axis direction but were
// still split into the same class by an earlier expansion (e.g. a
// degenerate single-edge class); admitting it would put a self-loop in
// the ordering DAG and break its topological sort, so it is skipped.
func addOrderingArc(ordering *graph.DirectedGraph, classes *EquivalenceClasses, witness map[[2]int][2]int, u, v int) {
	classU, err := classes.GetClassOfElem(u)
	if err != nil {
		return
	}
	classV, err := classes.GetClassOfElem(v)
	if err != nil {
		return
	}
	if classU == classV {
		return
	}
	if ordering.HasArc(classU, classV) {
		return
	}
	if err := ordering.AddArc(classU, classV); err != nil {
		return
	}
	witness[[2]int{classU, classV}] = [2]int{u, v}
}
