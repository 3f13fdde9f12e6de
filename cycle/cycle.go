package cycle

import (
	"fmt"
	"strings"
)

// Cycle is a circular sequence of distinct node ids. Index 0 and index
// Len()-1 are adjacent, same as every other consecutive pair.
//
// A Cycle is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
type Cycle struct {
	nodes []int
	pos   map[int]int // node id -> index in nodes, kept in sync by every mutator
}

// New returns a Cycle over nodes in the given order. The caller must ensure
// nodes contains no duplicates.
func New(nodes []int) *Cycle {
	c := &Cycle{
		nodes: append([]int(nil), nodes...),
	}
	c.reindex()

	return c
}

func (c *Cycle) reindex() {
	c.pos = make(map[int]int, len(c.nodes))
	for i, id := range c.nodes {
		c.pos[id] = i
	}
}

// Len returns the number of nodes in the cycle.
func (c *Cycle) Len() int { return len(c.nodes) }

// Empty reports whether the cycle has no nodes.
func (c *Cycle) Empty() bool { return len(c.nodes) == 0 }

// Nodes returns the cycle's nodes in order, as a copy.
func (c *Cycle) Nodes() []int {
	return append([]int(nil), c.nodes...)
}

// HasNode reports whether id is a member of the cycle.
func (c *Cycle) HasNode(id int) bool {
	_, ok := c.pos[id]
	return ok
}

// PositionOf returns the index of id within the cycle and true, or
// (0, false) if id is not a member.
func (c *Cycle) PositionOf(id int) (int, bool) {
	i, ok := c.pos[id]
	return i, ok
}

// At returns the node id at index i, taken modulo Len().
func (c *Cycle) At(i int) int {
	n := len(c.nodes)
	i = ((i % n) + n) % n

	return c.nodes[i]
}

// NextOf returns the node following id in cycle order. Returns
// ErrNodeNotInCycle if id is absent.
func (c *Cycle) NextOf(id int) (int, error) {
	i, ok := c.pos[id]
	if !ok {
		return 0, fmt.Errorf("NextOf(%d): %w", id, ErrNodeNotInCycle)
	}

	return c.At(i + 1), nil
}

// PrevOf returns the node preceding id in cycle order. Returns
// ErrNodeNotInCycle if id is absent.
func (c *Cycle) PrevOf(id int) (int, error) {
	i, ok := c.pos[id]
	if !ok {
		return 0, fmt.Errorf("PrevOf(%d): %w", id, ErrNodeNotInCycle)
	}

	return c.At(i - 1), nil
}

// Insert places id at position index, shifting subsequent elements right.
// index == Len() appends at the end, immediately before the wrap to index 0.
func (c *Cycle) Insert(index int, id int) {
	if index < 0 {
		index = 0
	}
	if index > len(c.nodes) {
		index = len(c.nodes)
	}
	c.nodes = append(c.nodes, 0)
	copy(c.nodes[index+1:], c.nodes[index:])
	c.nodes[index] = id
	c.reindex()
}

// Append adds id immediately before the wrap back to index 0.
func (c *Cycle) Append(id int) {
	c.Insert(len(c.nodes), id)
}

// RemoveIfExists deletes id from the cycle if present; a no-op otherwise.
func (c *Cycle) RemoveIfExists(id int) {
	i, ok := c.pos[id]
	if !ok {
		return
	}
	c.nodes = append(c.nodes[:i], c.nodes[i+1:]...)
	c.reindex()
}

// AddBetween inserts newID between a and b if they are adjacent (in either
// order) and newID is not already a member. It is a no-op if a and b are
// not both present, are not adjacent, or newID already exists; this mirrors
// the "split this edge" usage from the bend-repair loop, where the caller
// has already checked a and b are endpoints of an edge being split.
func (c *Cycle) AddBetween(a, b, newID int) {
	if c.HasNode(newID) {
		return
	}
	if !c.HasNode(a) || !c.HasNode(b) {
		return
	}
	if next, err := c.NextOf(a); err == nil && next == b {
		posA, _ := c.PositionOf(a)
		c.Insert(posA+1, newID)
		return
	}
	if next, err := c.NextOf(b); err == nil && next == a {
		posB, _ := c.PositionOf(b)
		c.Insert(posB+1, newID)
	}
}

// Clone returns an independent copy of the cycle.
func (c *Cycle) Clone() *Cycle {
	return New(c.nodes)
}

func (c *Cycle) String() string {
	parts := make([]string, len(c.nodes))
	for i, id := range c.nodes {
		parts[i] = fmt.Sprintf("%d", id)
	}

	return "Cycle: " + strings.Join(parts, " ")
}
