package drawing

import (
	"sort"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/graph"
)

// ComputeNodeToIndexPosition collapses each axis's raw coordinates onto a
// dense sequence of grid indices: consecutive coordinates less than
// threshold units apart land on the same index, so gaps left behind by removed
// bends or absorbed helper nodes don't bloat the drawing's area. Package
// stats reuses this to measure area, edge length, and bends on the same
// compacted grid compactArea produces.
func ComputeNodeToIndexPosition(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes, threshold int) (nodeToX, nodeToY map[int]int) {
	coordYToNodes := make(map[int][]int)
	coordXToNodes := make(map[int][]int)
	for _, id := range g.NodeIDs() {
		y := attributes.GetPositionY(id)
		coordYToNodes[y] = append(coordYToNodes[y], id)
		x := attributes.GetPositionX(id)
		coordXToNodes[x] = append(coordXToNodes[x], id)
	}

	return clusterCoordinates(coordXToNodes, threshold), clusterCoordinates(coordYToNodes, threshold)
}

func clusterCoordinates(coordToNodes map[int][]int, threshold int) map[int]int {
	coords := make([]int, 0, len(coordToNodes))
	for c := range coordToNodes {
		coords = append(coords, c)
	}
	sort.Ints(coords)

	result := make(map[int]int)
	index := 0
	for i, coord := range coords {
		for _, node := range coordToNodes[coord] {
			result[node] = index
		}
		if i+1 < len(coords) && coords[i+1]-coord >= threshold {
			index++
		}
	}

	return result
}

// compactArea reassigns every node's final position to its clustered
// grid index times classSpacing, removing any slack left by intermediate
// repair steps.
func compactArea(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes, classSpacing, threshold int) {
	nodeX, nodeY := ComputeNodeToIndexPosition(g, attributes, threshold)
	for _, id := range g.NodeIDs() {
		attributes.SetPosition(id, nodeX[id]*classSpacing, nodeY[id]*classSpacing)
	}
}

// fixNegativePositions translates every node so the minimum x and y
// coordinates are both at least 0.
func fixNegativePositions(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes) {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return
	}

	minX, minY := attributes.GetPositionX(ids[0]), attributes.GetPositionY(ids[0])
	for _, id := range ids[1:] {
		if x := attributes.GetPositionX(id); x < minX {
			minX = x
		}
		if y := attributes.GetPositionY(id); y < minY {
			minY = y
		}
	}

	if minX < 0 {
		for _, id := range ids {
			attributes.ChangePositionX(id, attributes.GetPositionX(id)-minX)
		}
	}
	if minY < 0 {
		for _, id := range ids {
			attributes.ChangePositionY(id, attributes.GetPositionY(id)-minY)
		}
	}
}
