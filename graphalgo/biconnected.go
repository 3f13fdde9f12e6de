package graphalgo

import (
	"sort"

	"github.com/katalvlaran/orthograph/graph"
)

// BiconnectedComponents is the result of decomposing a graph into maximal
// subgraphs with no cut vertex, plus the set of cut vertices themselves.
type BiconnectedComponents struct {
	CutVertices map[int]struct{}
	Components []*graph.UndirectedGraph
}

// biconnectState carries the low-link DFS bookkeeping across recursive
// calls; it is not part of the public API.
type biconnectState struct {
	graph     *graph.UndirectedGraph
	order     map[int]int
	low       map[int]int
	parentOf  map[int]int
	nextOrder int
	nodeStack []int
	edgeStack [][2]int
	result    *BiconnectedComponents
}

// ComputeBiconnectedComponents decomposes g into biconnected components and
// reports its cut vertices, following the low-point DFS from Hopcroft and
// Tarjan. Isolated nodes form their own singleton component.
//
// Complexity: O(V + E).
func ComputeBiconnectedComponents(g *graph.UndirectedGraph) *BiconnectedComponents {
	st := &biconnectState{
		graph:    g,
		order:    make(map[int]int),
		low:      make(map[int]int),
		parentOf: make(map[int]int),
		result:   &BiconnectedComponents{CutVertices: map[int]struct{}{}},
	}
	for _, id := range g.NodeIDs() {
		if _, ok := st.order[id]; !ok {
			st.visit(id)
		}
	}

	return st.result
}

func (st *biconnectState) visit(id int) {
	st.order[id] = st.nextOrder
	st.low[id] = st.nextOrder
	st.nextOrder++
	children := 0

	for _, nbr := range st.graph.SortedNeighbors(id) {
		if p, ok := st.parentOf[id]; ok && p == nbr {
			continue
		}
		if _, seen := st.order[nbr]; !seen {
			children++
			st.parentOf[nbr] = id
			nodeMark := len(st.nodeStack)
			edgeMark := len(st.edgeStack)
			st.nodeStack = append(st.nodeStack, nbr)
			st.edgeStack = append(st.edgeStack, [2]int{id, nbr})

			st.visit(nbr)

			if st.low[nbr] < st.low[id] {
				st.low[id] = st.low[nbr]
			}
			if st.low[nbr] >= st.order[id] {
				nodes := append([]int(nil), st.nodeStack[nodeMark:]...)
				edges := append([][2]int(nil), st.edgeStack[edgeMark:]...)
				nodes = append(nodes, id)
				st.nodeStack = st.nodeStack[:nodeMark]
				st.edgeStack = st.edgeStack[:edgeMark]

				st.result.Components = append(st.result.Components, buildComponent(nodes, edges))
				if _, hasParent := st.parentOf[id]; hasParent {
					st.result.CutVertices[id] = struct{}{}
				}
			}
		} else {
			if st.order[nbr] < st.order[id] {
				st.edgeStack = append(st.edgeStack, [2]int{id, nbr})
				if st.order[nbr] < st.low[id] {
					st.low[id] = st.order[nbr]
				}
			}
		}
	}

	if _, hasParent := st.parentOf[id]; !hasParent {
		if children >= 2 {
			st.result.CutVertices[id] = struct{}{}
		} else if children == 0 {
			st.result.Components = append(st.result.Components, buildComponent([]int{id}, nil))
		}
	}
}

func buildComponent(nodes []int, edges [][2]int) *graph.UndirectedGraph {
	comp := graph.NewUndirectedGraph()
	for _, id := range nodes {
		if !comp.HasNode(id) {
			comp.EnsureNode(id)
		}
	}
	for _, e := range edges {
		if !comp.HasEdge(e[0], e[1]) {
			comp.AddEdge(e[0], e[1])
		}
	}

	return comp
}

// SortedCutVertices returns the cut vertices in ascending order, for
// deterministic output.
func (b *BiconnectedComponents) SortedCutVertices() []int {
	ids := make([]int, 0, len(b.CutVertices))
	for id := range b.CutVertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
