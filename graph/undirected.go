package graph

import (
	"fmt"
	"sort"
	"sync"
)

// UndirectedGraph is a simple undirected graph keyed by int node ids.
//
// Invariants:
//   - symmetry: v is a neighbor of u iff u is a neighbor of v.
//   - no self-loops, no parallel edges.
//   - edgeCount is maintained explicitly rather than derived by summing
//     degrees, so EdgeCount is O(1).
type UndirectedGraph struct {
	mu        sync.RWMutex
	nextID    int
	nodes     map[int]struct{}
	adjacency map[int]map[int]struct{}
	edgeCount int
}

// NewUndirectedGraph returns an empty graph.
func NewUndirectedGraph() *UndirectedGraph {
	return &UndirectedGraph{
		nodes:     make(map[int]struct{}),
		adjacency: make(map[int]map[int]struct{}),
	}
}

// AddNode allocates a fresh id and inserts a node for it.
//
// Complexity: O(1).
func (g *UndirectedGraph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++
	g.nodes[id] = struct{}{}
	g.adjacency[id] = make(map[int]struct{})

	return id
}

// EnsureNode inserts a node with the explicit id if absent, and advances the
// nextID cursor so future AddNode calls never collide with it. It is used by
// loaders that read explicit ids from a file rather than generating them.
// Returns ErrNodeExists if id is already present.
func (g *UndirectedGraph) EnsureNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("EnsureNode(%d): %w", id, ErrNodeExists)
	}
	g.nodes[id] = struct{}{}
	g.adjacency[id] = make(map[int]struct{})
	if id >= g.nextID {
		g.nextID = id + 1
	}

	return nil
}

// HasNode reports whether id is present.
func (g *UndirectedGraph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// RemoveNode deletes id and every edge incident to it.
//
// Complexity: O(degree(id)).
func (g *UndirectedGraph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("RemoveNode(%d): %w", id, ErrNodeNotFound)
	}
	for nbr := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)

	return nil
}

// AddEdge inserts the undirected edge {u,v}.
//
// Errors: ErrNodeNotFound if either endpoint is absent, ErrSelfLoop if
// u == v, ErrEdgeExists if the edge is already present.
//
// Complexity: O(1) amortized.
func (g *UndirectedGraph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if _, ok := g.nodes[u]; !ok {
		return fmt.Errorf("AddEdge: node %d: %w", u, ErrNodeNotFound)
	}
	if _, ok := g.nodes[v]; !ok {
		return fmt.Errorf("AddEdge: node %d: %w", v, ErrNodeNotFound)
	}
	if _, ok := g.adjacency[u][v]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrEdgeExists)
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge {u,v}.
func (g *UndirectedGraph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u,v} is present.
func (g *UndirectedGraph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]
	return ok
}

// Neighbors returns the neighbors of id in unspecified but stable order.
func (g *UndirectedGraph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := make([]int, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		nbrs = append(nbrs, n)
	}
	sort.Ints(nbrs)

	return nbrs
}

// SortedNeighbors returns the neighbors of id sorted ascending, for callers
// that need deterministic iteration (tests, golden output).
func (g *UndirectedGraph) SortedNeighbors(id int) []int {
	nbrs := g.Neighbors(id)
	sort.Ints(nbrs)
	return nbrs
}

// Degree returns the number of edges incident to id.
func (g *UndirectedGraph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Size returns the number of nodes.
func (g *UndirectedGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *UndirectedGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// NodeIDs returns every node id, sorted ascending for determinism.
func (g *UndirectedGraph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns every edge {u,v} once, with u < v, sorted for determinism.
func (g *UndirectedGraph) Edges() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([][2]int, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	return edges
}

// Clone returns a deep copy, safe to mutate independently of g.
func (g *UndirectedGraph) Clone() *UndirectedGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &UndirectedGraph{
		nextID:    g.nextID,
		nodes:     make(map[int]struct{}, len(g.nodes)),
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
	}
	for id, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for n := range nbrs {
			cp[n] = struct{}{}
		}
		clone.adjacency[id] = cp
	}

	return clone
}

// MaxDegree returns the largest degree among all nodes, or 0 for an empty
// graph.
func (g *UndirectedGraph) MaxDegree() int {
	max := 0
	for _, id := range g.NodeIDs() {
		if d := g.Degree(id); d > max {
			max = d
		}
	}
	return max
}
