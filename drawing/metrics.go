package drawing

import (
	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/equivclass"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/graphalgo"
	"github.com/katalvlaran/orthograph/shape"
)

// checkIfMetricsExist looks for a metric-consistency violation in sh: a
// cycle in either per-axis ordering DAG means sh implies a drawing where
// some edge would have to run both ways along its axis. It returns one
// such cycle, translated back into g's node ids, or (nil,false) if none
// exists.
func checkIfMetricsExist(sh *shape.Shape, g *graph.UndirectedGraph) (*cycle.Cycle, bool) {
	classesX, classesY := equivclass.BuildEquivalenceClasses(sh, g)
	orderingX, orderingY, witnessX, witnessY := equivclass.EquivalenceClassesToOrdering(classesX, classesY, g, sh)

	if cx, ok := graphalgo.FindCycleDirected(orderingX); ok {
		return buildCycleInGraphFromCycleInOrdering(g, sh, cx, witnessX, false), true
	}
	if cy, ok := graphalgo.FindCycleDirected(orderingY); ok {
		return buildCycleInGraphFromCycleInOrdering(g, sh, cy, witnessY, true), true
	}

	return nil, false
}

// buildCycleInGraphFromCycleInOrdering translates a cycle over class ids
// back into a cycle over g's node ids: each class-level arc carries a
// witness (u,v) graph edge, and consecutive witnesses are stitched
// together with an intra-class path when they don't already share an
// endpoint.
func buildCycleInGraphFromCycleInOrdering(
	g *graph.UndirectedGraph,
	sh *shape.Shape,
	cycleInOrdering *cycle.Cycle,
	witness map[[2]int][2]int,
	goHorizontal bool,
) *cycle.Cycle {
	n := cycleInOrdering.Len()
	witnessAt := func(i int) [2]int {
		return witness[[2]int{cycleInOrdering.At(i), cycleInOrdering.At(i + 1)}]
	}

	var nodes []int
	for i := 0; i < n; i++ {
		from, to := witnessAt(i)[0], witnessAt(i)[1]
		nodes = append(nodes, from)

		nextFrom := witnessAt(i + 1)[0]
		if to != nextFrom {
			path := pathInClass(g, to, nextFrom, sh, goHorizontal)
			nodes = append(nodes, path[:len(path)-1]...)
		}
	}

	return cycle.New(nodes)
}

// pathInClass returns the node path from `from` to `to`, inclusive, that
// stays inside a single equivalence class: it walks only edges whose
// horizontality matches goHorizontal.
func pathInClass(g *graph.UndirectedGraph, from, to int, sh *shape.Shape, goHorizontal bool) []int {
	visited := make(map[int]struct{})
	var path []int

	var dfs func(current int) bool
	dfs = func(current int) bool {
		if current == to {
			path = append(path, current)
			return true
		}
		visited[current] = struct{}{}
		for _, neighbor := range g.SortedNeighbors(current) {
			if _, seen := visited[neighbor]; seen {
				continue
			}
			if goHorizontal == sh.IsHorizontal(current, neighbor) {
				if dfs(neighbor) {
					path = append(path, current)
					return true
				}
			}
		}
		delete(visited, current)

		return false
	}

	dfs(from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
