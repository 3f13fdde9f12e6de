package graphalgo

import (
	"sort"

	"github.com/katalvlaran/orthograph/graph"
)

// TopologicalOrder computes a topological ordering of g's nodes using
// Kahn's algorithm. Returns ErrHasCycle if g is not a DAG.
//
// Complexity: O(V + E).
func TopologicalOrder(g *graph.DirectedGraph) ([]int, error) {
	ids := g.NodeIDs()
	inDegree := make(map[int]int, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}
	for _, id := range ids {
		for _, nbr := range g.OutNeighbors(id) {
			inDegree[nbr]++
		}
	}

	sortedOut := func(id int) []int {
		nbrs := g.OutNeighbors(id)
		sort.Ints(nbrs)
		return nbrs
	}

	var queue []int
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]int, 0, len(ids))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, nbr := range sortedOut(id) {
			inDegree[nbr]--
			if inDegree[nbr] == 0 {
				queue = append(queue, nbr)
			}
		}
	}

	if len(order) != len(ids) {
		return nil, ErrHasCycle
	}

	return order, nil
}
