package graphalgo

import (
	"sort"

	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/graph"
)

const (
	white = 0
	gray  = 1
	black = 2
)

// FindCycleDirected returns one cycle in g (as a sequence of node ids) and
// true, or (nil, false) if g is acyclic.
//
// Complexity: O(V + E).
func FindCycleDirected(g *graph.DirectedGraph) (*cycle.Cycle, bool) {
	state := make(map[int]int)
	parent := make(map[int]int)
	var start, end int
	found := false

	ids := g.NodeIDs()
	var visit func(id int) bool
	visit = func(id int) bool {
		state[id] = gray
		nbrs := g.OutNeighbors(id)
		sort.Ints(nbrs)
		for _, nbr := range nbrs {
			if state[nbr] == white {
				parent[nbr] = id
				if visit(nbr) {
					return true
				}
			} else if state[nbr] == gray {
				start, end = nbr, id
				return true
			}
		}
		state[id] = black

		return false
	}

	for _, id := range ids {
		if state[id] != white {
			continue
		}
		if visit(id) {
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	var nodes []int
	for v := end; v != start; v = parent[v] {
		nodes = append(nodes, v)
	}
	nodes = append(nodes, start)
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return cycle.New(nodes), true
}

// FindCycleUndirected returns one cycle in g and true, or (nil, false) if g
// has at most 2 nodes or is acyclic. Graphs of size <= 2 cannot contain a
// simple cycle under the no-self-loop, no-multi-edge invariant.
//
// Complexity: O(V + E).
func FindCycleUndirected(g *graph.UndirectedGraph) (*cycle.Cycle, bool) {
	if g.Size() <= 2 {
		return nil, false
	}

	visited := make(map[int]struct{})
	parent := make(map[int]int)

	for _, start := range g.NodeIDs() {
		if _, ok := visited[start]; ok {
			continue
		}
		stack := []int{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := visited[id]; ok {
				continue
			}
			visited[id] = struct{}{}
			for _, nbr := range g.SortedNeighbors(id) {
				if _, ok := visited[nbr]; !ok {
					parent[nbr] = id
					stack = append(stack, nbr)
				} else if nbr != parent[id] {
					return buildUndirectedCycle(id, nbr, parent), true
				}
			}
		}
	}

	return nil, false
}

// buildUndirectedCycle reconstructs the cycle closed by the back edge
// (current, neighbor) given the DFS parent map.
func buildUndirectedCycle(current, neighbor int, parent map[int]int) *cycle.Cycle {
	pathX := map[int]struct{}{}
	x := current
	for {
		pathX[x] = struct{}{}
		p, ok := parent[x]
		if !ok {
			break
		}
		x = p
	}

	var pathToLCA []int
	y := neighbor
	for {
		if _, ok := pathX[y]; ok {
			break
		}
		pathToLCA = append(pathToLCA, y)
		p, ok := parent[y]
		if !ok {
			break
		}
		y = p
	}

	nodes := []int{y}
	x = current
	for x != y {
		nodes = append(nodes, x)
		x = parent[x]
	}
	for i, j := 0, len(pathToLCA)-1; i < j; i, j = i+1, j-1 {
		pathToLCA[i], pathToLCA[j] = pathToLCA[j], pathToLCA[i]
	}
	nodes = append(nodes, pathToLCA...)

	return cycle.New(nodes)
}
