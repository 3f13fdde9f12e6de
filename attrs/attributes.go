package attrs

import "sync"

// GraphAttributes holds the sparse per-node color and position maps the
// drawing pipeline reads and writes as it builds a shape, expands
// high-degree nodes, and assigns coordinates.
type GraphAttributes struct {
	mu        sync.RWMutex
	colors    map[int]Color
	positions map[int]Position
}

// New returns an empty GraphAttributes.
func New() *GraphAttributes {
	return &GraphAttributes{
		colors:    make(map[int]Color),
		positions: make(map[int]Position),
	}
}

// SetNodeColor assigns color to id, overwriting any previous value.
func (a *GraphAttributes) SetNodeColor(id int, color Color) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.colors[id] = color
}

// ChangeNodeColor is an alias for SetNodeColor kept for symmetry with the
// position setters below, which distinguish an initial set from a later
// change.
func (a *GraphAttributes) ChangeNodeColor(id int, color Color) {
	a.SetNodeColor(id, color)
}

// GetNodeColor returns id's color, defaulting to BLACK if unset (an
// original input node that was never explicitly colored).
func (a *GraphAttributes) GetNodeColor(id int) Color {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if c, ok := a.colors[id]; ok {
		return c
	}

	return Black
}

// HasColor reports whether id has an explicitly recorded color.
func (a *GraphAttributes) HasColor(id int) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.colors[id]
	return ok
}

// SetPosition assigns (x,y) to id, overwriting any previous value.
func (a *GraphAttributes) SetPosition(id, x, y int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.positions[id] = Position{X: x, Y: y}
}

// ChangePosition is an alias for SetPosition.
func (a *GraphAttributes) ChangePosition(id, x, y int) {
	a.SetPosition(id, x, y)
}

// ChangePositionX updates only id's X coordinate, leaving Y untouched. The
// node must already have a position.
func (a *GraphAttributes) ChangePositionX(id, x int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p := a.positions[id]
	p.X = x
	a.positions[id] = p
}

// ChangePositionY updates only id's Y coordinate, leaving X untouched. The
// node must already have a position.
func (a *GraphAttributes) ChangePositionY(id, y int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p := a.positions[id]
	p.Y = y
	a.positions[id] = p
}

// GetPositionX returns id's X coordinate, or 0 if unset.
func (a *GraphAttributes) GetPositionX(id int) int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.positions[id].X
}

// GetPositionY returns id's Y coordinate, or 0 if unset.
func (a *GraphAttributes) GetPositionY(id int) int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.positions[id].Y
}

// GetPosition returns id's full position and whether it is set.
func (a *GraphAttributes) GetPosition(id int) (Position, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	p, ok := a.positions[id]
	return p, ok
}

// HasPosition reports whether id has a recorded position.
func (a *GraphAttributes) HasPosition(id int) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.positions[id]
	return ok
}

// RemovePosition deletes id's recorded position, if any.
func (a *GraphAttributes) RemovePosition(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.positions, id)
}

// RemoveNode deletes every attribute recorded for id (color and position).
func (a *GraphAttributes) RemoveNode(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.colors, id)
	delete(a.positions, id)
}
