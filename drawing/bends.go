package drawing

import (
	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/shape"
)

// removeUselessBends deletes every bend (non-BLACK, degree-2) node whose
// two edges run in the same axis: a bend only exists to turn a corner, so
// one that doesn't turn is a flat artifact of shape repair and can be
// replaced with a single straight edge between its two neighbors.
func removeUselessBends(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes, sh *shape.Shape) {
	var toRemove []int
	for _, id := range g.NodeIDs() {
		if attributes.GetNodeColor(id) == attrs.Black {
			continue
		}
		nbrs := g.SortedNeighbors(id)
		if len(nbrs) != 2 {
			continue
		}
		if sh.IsHorizontal(id, nbrs[0]) == sh.IsHorizontal(id, nbrs[1]) {
			toRemove = append(toRemove, id)
		}
	}

	for _, id := range toRemove {
		nbrs := g.SortedNeighbors(id)
		j1, j2 := nbrs[0], nbrs[1]
		direction, _ := sh.GetDirection(j1, id)

		_ = g.RemoveNode(id)
		_ = g.AddEdge(j1, j2)
		_ = sh.RemoveDirection(id, j1)
		_ = sh.RemoveDirection(id, j2)
		_ = sh.RemoveDirection(j1, id)
		_ = sh.RemoveDirection(j2, id)
		sh.SetDirection(j1, j2, direction)
		sh.SetDirection(j2, j1, shape.Opposite(direction))
		attributes.RemoveNode(id)
	}
}
