package graphalgo

import (
	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/graph"
)

// ComputeCycleBasis returns a fundamental cycle basis of g: one cycle per
// non-tree edge of a BFS spanning tree, each built from the tree paths of
// its endpoints up to their common ancestor. Returns ErrNotConnected if g
// is not connected.
//
// Complexity: O(E * V) in the worst case (path-to-root walks per non-tree
// edge).
func ComputeCycleBasis(g *graph.UndirectedGraph) ([]*cycle.Cycle, error) {
	tree, err := BuildSpanningTree(g)
	if err != nil {
		return nil, err
	}

	var cycles []*cycle.Cycle
	for _, u := range g.NodeIDs() {
		for _, v := range g.SortedNeighbors(u) {
			if u > v {
				continue
			}
			if p, ok := tree.Parent(v); ok && p == u {
				continue
			}
			if p, ok := tree.Parent(u); ok && p == v {
				continue
			}

			ancestor := tree.CommonAncestor(u, v)
			pathU := fromAncestor(tree.PathFromRoot(u), ancestor) // ancestor -> u
			pathV := fromAncestor(tree.PathFromRoot(v), ancestor) // ancestor -> v

			// Reverse pathU to u -> ancestor, then append pathV sans its
			// leading (duplicate) ancestor: u -> ... -> ancestor -> ... -> v,
			// closed back to u by the (u,v) edge itself.
			reverseIntsInPlace(pathU)
			nodes := append(pathU, pathV[1:]...)
			cycles = append(cycles, cycle.New(nodes))
		}
	}

	return cycles, nil
}

// fromAncestor returns the suffix of a root-to-leaf path starting at
// ancestor, i.e. the tree path from ancestor down to the leaf.
func fromAncestor(path []int, ancestor int) []int {
	for i, id := range path {
		if id == ancestor {
			return append([]int(nil), path[i:]...)
		}
	}

	return path
}

func reverseIntsInPlace(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
