package graphalgo

import "github.com/katalvlaran/orthograph/graph"

// IsConnected reports whether g's nodes form a single connected component.
// An empty graph is considered connected.
//
// Complexity: O(V + E).
func IsConnected(g *graph.UndirectedGraph) bool {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return true
	}

	visited := make(map[int]struct{}, len(ids))
	stack := []int{ids[0]}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		for _, nbr := range g.Neighbors(id) {
			if _, ok := visited[nbr]; !ok {
				stack = append(stack, nbr)
			}
		}
	}

	return len(visited) == len(ids)
}

// ConnectedComponents partitions g into its connected components, each
// returned as an independent UndirectedGraph.
//
// Complexity: O(V + E).
func ConnectedComponents(g *graph.UndirectedGraph) []*graph.UndirectedGraph {
	visited := make(map[int]struct{})
	var components []*graph.UndirectedGraph

	for _, start := range g.NodeIDs() {
		if _, ok := visited[start]; ok {
			continue
		}
		comp := graph.NewUndirectedGraph()
		added := map[int]struct{}{}
		ensure := func(id int) {
			if _, ok := added[id]; !ok {
				comp.EnsureNode(id)
				added[id] = struct{}{}
			}
		}
		ensure(start)

		stack := []int{start}
		visited[start] = struct{}{}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nbr := range g.Neighbors(id) {
				ensure(nbr)
				if !comp.HasEdge(id, nbr) {
					comp.AddEdge(id, nbr)
				}
				if _, ok := visited[nbr]; !ok {
					visited[nbr] = struct{}{}
					stack = append(stack, nbr)
				}
			}
		}
		components = append(components, comp)
	}

	return components
}
