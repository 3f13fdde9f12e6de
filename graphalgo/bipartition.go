package graphalgo

import "github.com/katalvlaran/orthograph/graph"

// ComputeBipartition two-colors g via BFS. Returns the coloring and true if
// g is bipartite, or (nil, false) if an odd cycle makes that impossible.
//
// Complexity: O(V + E).
func ComputeBipartition(g *graph.UndirectedGraph) (map[int]bool, bool) {
	color := make(map[int]bool)
	for _, start := range g.NodeIDs() {
		if _, ok := color[start]; ok {
			continue
		}
		color[start] = false
		queue := []int{start}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for _, nbr := range g.Neighbors(id) {
				if _, ok := color[nbr]; !ok {
					color[nbr] = !color[id]
					queue = append(queue, nbr)
				} else if color[nbr] == color[id] {
					return nil, false
				}
			}
		}
	}

	return color, true
}
