package equivclass

import (
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/shape"
)

// BuildEquivalenceClasses partitions g's nodes into horizontal (y-axis)
// and vertical (x-axis) equivalence classes according to sh: two adjacent
// nodes share a y-class when the edge between them runs horizontally
// (they sit on the same horizontal line), and share an x-class when the
// edge runs vertically. Class ids are allocated in ascending node order,
// so the result is deterministic.
func BuildEquivalenceClasses(sh *shape.Shape, g *graph.UndirectedGraph) (classesX, classesY *EquivalenceClasses) {
	classesX = New()
	classesY = New()

	nextClassX := 0
	nextClassY := 0

	for _, node := range g.NodeIDs() {
		if !classesY.HasElemAClass(node) {
			expand(sh, g, node, nextClassY, classesY, isVerticalEdge)
			nextClassY++
		}
		if !classesX.HasElemAClass(node) {
			expand(sh, g, node, nextClassX, classesX, isHorizontalEdge)
			nextClassX++
		}
	}

	// Defensive backfill: every node above is classed on both axes by
	// construction, but an isolated node with no incident edges would be
	// classed by the loop above already (expand always classes its seed
	// node first), so this only protects against a future caller handing
	// in a sh/g pair that skipped a node entirely.
	for _, node := range g.NodeIDs() {
		if !classesY.HasElemAClass(node) {
			_ = classesY.SetClass(node, nextClassY)
			nextClassY++
		}
		if !classesX.HasElemAClass(node) {
			_ = classesX.SetClass(node, nextClassX)
			nextClassX++
		}
	}

	return classesX, classesY
}

func isVerticalEdge(sh *shape.Shape, a, b int) bool   { return sh.IsVertical(a, b) }
func isHorizontalEdge(sh *shape.Shape, a, b int) bool { return sh.IsHorizontal(a, b) }

// expand floods out from seed along edges that do not satisfy
// isDirectionWrong, assigning every reached node to classID. It is
// iterative rather than recursive so it never risks a stack overflow on a
// long chain of same-direction edges.
func expand(
	sh *shape.Shape,
	g *graph.UndirectedGraph,
	seed int,
	classID int,
	classes *EquivalenceClasses,
	isDirectionWrong func(*shape.Shape, int, int) bool,
) {
	stack := []int{seed}
	_ = classes.SetClass(seed, classID)

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nbr := range g.SortedNeighbors(node) {
			if classes.HasElemAClass(nbr) {
				continue
			}
			if isDirectionWrong(sh, node, nbr) {
				continue
			}
			_ = classes.SetClass(nbr, classID)
			stack = append(stack, nbr)
		}
	}
}
