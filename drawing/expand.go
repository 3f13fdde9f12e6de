package drawing

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/equivclass"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/graphalgo"
	"github.com/katalvlaran/orthograph/shape"
)

// hasGraphDegreeMoreThan4 reports whether any node in g has more than
// four incident edges — more than an orthogonal grid position has ports
// for.
func hasGraphDegreeMoreThan4(g *graph.UndirectedGraph) bool {
	for _, id := range g.NodeIDs() {
		if g.Degree(id) > 4 {
			return true
		}
	}

	return false
}

// getOtherNeighborID returns nodeID's neighbor other than neighborID. It
// is only ever called on degree-2 nodes (bends and helper nodes).
func getOtherNeighborID(g *graph.UndirectedGraph, nodeID, neighborID int) (int, error) {
	for _, nbr := range g.SortedNeighbors(nodeID) {
		if nbr != neighborID {
			return nbr, nil
		}
	}

	return 0, fmt.Errorf("getOtherNeighborID(%d,%d): %w", nodeID, neighborID, errNoOtherNeighbor)
}

// addGreenBlueNodes replaces every edge incident to a degree>4 node with
// a two-edge detour through a fresh GREEN (for a horizontal original
// edge) or BLUE (for a vertical one) helper node, so the degree>4 node
// keeps at most four direct edges and every fan-out direction only ever
// carries helper nodes. It then lays out a temporary position grid (later
// discarded) so fixUselessGreenBlueNodes can compare helper positions.
func addGreenBlueNodes(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes, sh *shape.Shape) error {
	var highDegree []int
	for _, id := range g.NodeIDs() {
		if g.Degree(id) > 4 {
			highDegree = append(highDegree, id)
		}
	}

	for _, nodeID := range highDegree {
		var toAdd [][2]int
		var toRemove [][2]int

		for _, neighborID := range g.SortedNeighbors(nodeID) {
			addedID := g.AddNode()
			toAdd = append(toAdd, [2]int{addedID, nodeID}, [2]int{addedID, neighborID})

			forward, _ := sh.GetDirection(nodeID, neighborID)
			backward, _ := sh.GetDirection(neighborID, nodeID)
			sh.SetDirection(addedID, neighborID, forward)
			sh.SetDirection(neighborID, addedID, backward)

			if sh.IsHorizontal(nodeID, neighborID) {
				attributes.SetNodeColor(addedID, attrs.Green)
				sh.SetDirection(nodeID, addedID, shape.Up)
				sh.SetDirection(addedID, nodeID, shape.Down)
			} else {
				attributes.SetNodeColor(addedID, attrs.Blue)
				sh.SetDirection(nodeID, addedID, shape.Right)
				sh.SetDirection(addedID, nodeID, shape.Left)
			}

			_ = sh.RemoveDirection(nodeID, neighborID)
			_ = sh.RemoveDirection(neighborID, nodeID)
			toRemove = append(toRemove, [2]int{nodeID, neighborID})
		}

		for _, e := range toAdd {
			_ = g.AddEdge(e[0], e[1])
		}
		for _, e := range toRemove {
			_ = g.RemoveEdge(e[0], e[1])
		}
	}

	classesX, classesY := equivclass.BuildEquivalenceClasses(sh, g)
	orderingX, orderingY, _, _ := equivclass.EquivalenceClassesToOrdering(classesX, classesY, g, sh)

	orderX, err := graphalgo.TopologicalOrder(orderingX)
	if err != nil {
		return fmt.Errorf("addGreenBlueNodes: x ordering: %w", err)
	}
	orderY, err := graphalgo.TopologicalOrder(orderingY)
	if err != nil {
		return fmt.Errorf("addGreenBlueNodes: y ordering: %w", err)
	}

	nodeX := make(map[int]int)
	for i, classID := range orderX {
		elems, _ := classesX.GetElemsOfClass(classID)
		for _, node := range elems {
			nodeX[node] = 100 * i
		}
	}
	nodeY := make(map[int]int)
	for i, classID := range orderY {
		elems, _ := classesY.GetElemsOfClass(classID)
		for _, node := range elems {
			nodeY[node] = 100 * i
		}
	}
	for _, id := range g.NodeIDs() {
		attributes.SetPosition(id, nodeX[id], nodeY[id])
	}

	if err := fixUselessGreenBlueNodes(g, attributes, sh); err != nil {
		return fmt.Errorf("addGreenBlueNodes: %w", err)
	}

	for _, id := range g.NodeIDs() {
		attributes.RemovePosition(id)
	}

	return nil
}

// edgesToFix maps each degree>4 node to the one helper node it should
// absorb back onto each of its four unused ports, found by
// findEdgesToFix.
type edgesToFix struct {
	leftestUp    map[int]int
	leftestDown  map[int]int
	downestLeft  map[int]int
	downestRight map[int]int
}

// findEdgesToFix scans every degree>4 node's GREEN/BLUE helper edges and,
// for each of the four fan-out directions a helper can continue in,
// records the helper positioned closest to the node — the one a
// straight-line port can absorb directly instead of detouring through an
// extra bend.
func findEdgesToFix(g *graph.UndirectedGraph, sh *shape.Shape, attributes *attrs.GraphAttributes) (edgesToFix, error) {
	result := edgesToFix{
		leftestUp:    make(map[int]int),
		leftestDown:  make(map[int]int),
		downestLeft:  make(map[int]int),
		downestRight: make(map[int]int),
	}

	for _, nodeID := range g.NodeIDs() {
		if g.Degree(nodeID) <= 4 {
			continue
		}

		leftestUp, leftestDown, downestLeft, downestRight := -1, -1, -1, -1

		for _, addedID := range g.SortedNeighbors(nodeID) {
			if sh.IsHorizontal(nodeID, addedID) {
				if sh.IsLeft(nodeID, addedID) {
					return edgesToFix{}, fmt.Errorf("findEdgesToFix: node %d: %w", nodeID, errUnexpectedLeftEdge)
				}
				otherNeighbor, err := getOtherNeighborID(g, addedID, nodeID)
				if err != nil {
					return edgesToFix{}, err
				}
				if sh.IsUp(addedID, otherNeighbor) {
					if leftestUp == -1 || attributes.GetPositionX(addedID) < attributes.GetPositionX(leftestUp) {
						leftestUp = addedID
					}
				} else if leftestDown == -1 || attributes.GetPositionX(addedID) < attributes.GetPositionX(leftestDown) {
					leftestDown = addedID
				}
			} else {
				if sh.IsDown(nodeID, addedID) {
					return edgesToFix{}, fmt.Errorf("findEdgesToFix: node %d: %w", nodeID, errUnexpectedDownEdge)
				}
				otherNeighbor, err := getOtherNeighborID(g, addedID, nodeID)
				if err != nil {
					return edgesToFix{}, err
				}
				if sh.IsLeft(addedID, otherNeighbor) {
					if downestLeft == -1 || attributes.GetPositionY(addedID) < attributes.GetPositionY(downestLeft) {
						downestLeft = addedID
					}
				} else if downestRight == -1 || attributes.GetPositionY(addedID) < attributes.GetPositionY(downestRight) {
					downestRight = addedID
				}
			}
		}

		result.leftestUp[nodeID] = leftestUp
		result.leftestDown[nodeID] = leftestDown
		result.downestLeft[nodeID] = downestLeft
		result.downestRight[nodeID] = downestRight
	}

	return result, nil
}

// fixEdge removes otherNodeID (a degree-2 helper) and reconnects nodeID
// straight through to otherNodeID's other neighbor in direction.
func fixEdge(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes, sh *shape.Shape, nodeID, otherNodeID int, direction shape.Direction) error {
	otherNeighborID, err := getOtherNeighborID(g, otherNodeID, nodeID)
	if err != nil {
		return err
	}

	_ = g.RemoveNode(otherNodeID)
	attributes.RemoveNode(otherNodeID)
	_ = g.AddEdge(nodeID, otherNeighborID)
	_ = sh.RemoveDirection(nodeID, otherNodeID)
	_ = sh.RemoveDirection(otherNodeID, nodeID)
	_ = sh.RemoveDirection(otherNodeID, otherNeighborID)
	_ = sh.RemoveDirection(otherNeighborID, otherNodeID)
	sh.SetDirection(nodeID, otherNeighborID, direction)
	sh.SetDirection(otherNeighborID, nodeID, shape.Opposite(direction))

	return nil
}

// fixUselessGreenBlueNodes absorbs the one closest helper per fan-out
// direction back onto its degree>4 node's port, shortening the detour
// addGreenBlueNodes introduced wherever a straight connection is
// possible.
func fixUselessGreenBlueNodes(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes, sh *shape.Shape) error {
	fixes, err := findEdgesToFix(g, sh, attributes)
	if err != nil {
		return err
	}

	apply := func(m map[int]int, direction shape.Direction) error {
		nodes := make([]int, 0, len(m))
		for node := range m {
			nodes = append(nodes, node)
		}
		sort.Ints(nodes)

		for _, node := range nodes {
			target := m[node]
			if target == -1 {
				continue
			}
			if err := fixEdge(g, attributes, sh, node, target, direction); err != nil {
				return err
			}
		}

		return nil
	}

	if err := apply(fixes.leftestUp, shape.Up); err != nil {
		return err
	}
	if err := apply(fixes.leftestDown, shape.Down); err != nil {
		return err
	}
	if err := apply(fixes.downestLeft, shape.Left); err != nil {
		return err
	}

	return apply(fixes.downestRight, shape.Right)
}
