package drawing

import (
	"sort"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/shape"
)

// axis distinguishes which coordinate make_shifts is fanning helper
// nodes out along.
type axis int

const (
	axisX axis = iota
	axisY
)

// neighborsAtEachDirection buckets nodeID's neighbors by the direction
// the edge to them runs in.
func neighborsAtEachDirection(g *graph.UndirectedGraph, sh *shape.Shape, nodeID int) map[shape.Direction][]int {
	result := make(map[shape.Direction][]int)
	for _, nbr := range g.SortedNeighbors(nodeID) {
		d, _ := sh.GetDirection(nodeID, nbr)
		result[d] = append(result[d], nbr)
	}

	return result
}

// findFixedIndexNode returns the index of the first BLACK (original)
// node in nodesAtDirection, which stays put while the rest shift around
// it, or the midpoint index if all the nodes there are helpers.
func findFixedIndexNode(attributes *attrs.GraphAttributes, nodesAtDirection []int) int {
	for i, id := range nodesAtDirection {
		if attributes.GetNodeColor(id) == attrs.Black {
			return i
		}
	}

	return len(nodesAtDirection) / 2
}

// shiftingOrder sorts nodesAtDirection so that, reading outward from the
// fixed node, helpers continuing in increasingDirection come after
// helpers continuing in the opposite direction, and ties within a group
// are broken by getPosition along the node's own axis.
func shiftingOrder(
	g *graph.UndirectedGraph,
	sh *shape.Shape,
	attributes *attrs.GraphAttributes,
	nodeID int,
	nodesAtDirection []int,
	increasingDirection shape.Direction,
	getPosition func(int) int,
) {
	decreasingDirection := shape.Opposite(increasingDirection)
	continuesIn := func(id int) shape.Direction {
		other, _ := getOtherNeighborID(g, id, nodeID)
		d, _ := sh.GetDirection(id, other)

		return d
	}

	sort.Slice(nodesAtDirection, func(i, j int) bool {
		a, b := nodesAtDirection[i], nodesAtDirection[j]

		if attributes.GetNodeColor(a) == attrs.Black {
			return continuesIn(b) == increasingDirection
		}
		if attributes.GetNodeColor(b) == attrs.Black {
			return continuesIn(a) == decreasingDirection
		}

		aDir, bDir := continuesIn(a), continuesIn(b)
		switch {
		case aDir == increasingDirection && bDir == decreasingDirection:
			return false
		case aDir == decreasingDirection && bDir == increasingDirection:
			return true
		case aDir == increasingDirection && bDir == increasingDirection:
			return getPosition(a) > getPosition(b)
		default:
			return getPosition(a) < getPosition(b)
		}
	})
}

// makeShifts fans nodesAtDirection out around nodeID along axis ax,
// inserting a colored helper node between nodeID and every shifted
// neighbor except the one node that stays fixed in place.
func makeShifts(
	g *graph.UndirectedGraph,
	sh *shape.Shape,
	attributes *attrs.GraphAttributes,
	nodeID int,
	nodesAtDirection []int,
	ax axis,
	increasingDirection shape.Direction,
	color attrs.Color,
	shiftStep int,
) {
	if len(nodesAtDirection) == 0 {
		return
	}

	getPosition, getPositionOther := attributes.GetPositionX, attributes.GetPositionY
	changePositionOther := attributes.ChangePositionY
	if ax == axisY {
		getPosition, getPositionOther = attributes.GetPositionY, attributes.GetPositionX
		changePositionOther = attributes.ChangePositionX
	}

	shiftingOrder(g, sh, attributes, nodeID, nodesAtDirection, increasingDirection, getPosition)

	indexOfFixed := findFixedIndexNode(attributes, nodesAtDirection)
	initialPosition := getPositionOther(nodeID)

	for _, id := range g.NodeIDs() {
		old := getPositionOther(id)
		switch {
		case old > initialPosition:
			changePositionOther(id, old+shiftStep*(len(nodesAtDirection)-indexOfFixed-1))
		case old < initialPosition:
			changePositionOther(id, old-shiftStep*indexOfFixed)
		}
	}

	for i, nodeToShiftID := range nodesAtDirection {
		if i == indexOfFixed {
			continue
		}
		shift := (i - indexOfFixed) * shiftStep

		nodeToShiftNeighborID, _ := getOtherNeighborID(g, nodeToShiftID, nodeID)
		direction, _ := sh.GetDirection(nodeToShiftID, nodeToShiftNeighborID)

		addedID := g.AddNode()
		attributes.SetNodeColor(addedID, color)
		sh.SetDirection(nodeID, addedID, direction)
		sh.SetDirection(addedID, nodeID, shape.Opposite(direction))
		sh.SetDirection(addedID, nodeToShiftID, direction)
		sh.SetDirection(nodeToShiftID, addedID, shape.Opposite(direction))
		_ = sh.RemoveDirection(nodeID, nodeToShiftID)
		_ = sh.RemoveDirection(nodeToShiftID, nodeID)
		_ = g.RemoveEdge(nodeID, nodeToShiftID)
		_ = g.AddEdge(nodeID, addedID)
		_ = g.AddEdge(addedID, nodeToShiftID)

		if ax == axisX {
			attributes.SetPosition(addedID, attributes.GetPositionX(nodeID), initialPosition+shift)
		} else {
			attributes.SetPosition(addedID, initialPosition+shift, attributes.GetPositionY(nodeID))
		}
		changePositionOther(nodeToShiftID, getPositionOther(addedID))
	}
}

// makeShiftsOverlappedEdges spreads every degree>4 node's four fan-out
// groups (RIGHT, UP, LEFT, DOWN) apart so helper edges stop overlapping.
func makeShiftsOverlappedEdges(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes, sh *shape.Shape, shiftStep int) {
	var highDegree []int
	for _, id := range g.NodeIDs() {
		if g.Degree(id) > 4 {
			highDegree = append(highDegree, id)
		}
	}

	for _, nodeID := range highDegree {
		byDirection := neighborsAtEachDirection(g, sh, nodeID)
		makeShifts(g, sh, attributes, nodeID, byDirection[shape.Right], axisX, shape.Up, attrs.Green, shiftStep)
		makeShifts(g, sh, attributes, nodeID, byDirection[shape.Up], axisY, shape.Right, attrs.Blue, shiftStep)
		makeShifts(g, sh, attributes, nodeID, byDirection[shape.Left], axisX, shape.Up, attrs.GreenDark, shiftStep)
		makeShifts(g, sh, attributes, nodeID, byDirection[shape.Down], axisY, shape.Right, attrs.BlueDark, shiftStep)
	}
}
