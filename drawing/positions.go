package drawing

import (
	"fmt"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/equivclass"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/graphalgo"
	"github.com/katalvlaran/orthograph/shape"
)

// buildNodesPositions repairs any remaining metric inconsistency around
// degree>4 helper nodes, then assigns every node an integer grid position
// by spacing the topologically ordered x- and y-classes 100 units apart.
// Position (x,y) is provisional here: compactArea collapses the grid at
// the end of the pipeline and applies Config.ClassSpacing there.
func buildNodesPositions(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes, sh *shape.Shape) error {
	findInconsistencies(g, attributes, sh)

	classesX, classesY := equivclass.BuildEquivalenceClasses(sh, g)
	orderingX, orderingY, _, _ := equivclass.EquivalenceClassesToOrdering(classesX, classesY, g, sh)

	orderX, err := graphalgo.TopologicalOrder(orderingX)
	if err != nil {
		return fmt.Errorf("buildNodesPositions: x ordering: %w", err)
	}
	orderY, err := graphalgo.TopologicalOrder(orderingY)
	if err != nil {
		return fmt.Errorf("buildNodesPositions: y ordering: %w", err)
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

	return nil
}

// findInconsistencies repeatedly looks for a metric-consistency cycle
// through the GREEN/BLUE helper nodes added around a degree>4 node and
// flips one helper's direction to DARK per cycle found, until none
// remain.
func findInconsistencies(g *graph.UndirectedGraph, attributes *attrs.GraphAttributes, sh *shape.Shape) {
	for {
		classesX, classesY := equivclass.BuildEquivalenceClasses(sh, g)
		orderingX, orderingY, witnessX, witnessY := equivclass.EquivalenceClassesToOrdering(classesX, classesY, g, sh)

		cycleX, okX := graphalgo.FindCycleDirected(orderingX)
		cycleY, okY := graphalgo.FindCycleDirected(orderingY)
		if !okX && !okY {
			return
		}

		if okX {
			c := buildCycleInGraphFromCycleInOrdering(g, sh, cycleX, witnessX, false)
			fixInconsistency(g, c, attributes, sh, attrs.Blue)
		} else {
			c := buildCycleInGraphFromCycleInOrdering(g, sh, cycleY, witnessY, true)
			fixInconsistency(g, c, attributes, sh, attrs.Green)
		}
	}
}

// fixInconsistency finds the cycle's one node colored colorToFind, flips
// one of its two incident directions to RIGHT (for a BLUE node) or UP
// (for a GREEN node), and marks it with the DARK variant of its color so
// it is not picked again.
func fixInconsistency(g *graph.UndirectedGraph, c *cycle.Cycle, attributes *attrs.GraphAttributes, sh *shape.Shape, colorToFind attrs.Color) {
	direction := shape.Right
	if colorToFind == attrs.Green {
		direction = shape.Up
	}

	coloredNode := -1
	for _, id := range c.Nodes() {
		if attributes.GetNodeColor(id) == colorToFind {
			coloredNode = id
		}
	}
	if coloredNode == -1 {
		return
	}

	nbrs := g.SortedNeighbors(coloredNode)
	target := nbrs[1]
	if sh.IsUp(nbrs[0], coloredNode) {
		target = nbrs[0]
	}

	_ = sh.RemoveDirection(coloredNode, target)
	_ = sh.RemoveDirection(target, coloredNode)
	sh.SetDirection(coloredNode, target, direction)
	sh.SetDirection(target, coloredNode, shape.Opposite(direction))
	attributes.ChangeNodeColor(coloredNode, colorToFind.Dark())
}
