package shape

import "fmt"

// Shape is a partial map from a directed incidence (u,v) to the compass
// direction the segment from u to v runs in.
//
// Not safe for concurrent use.
type Shape struct {
	dirs map[[2]int]Direction
}

// New returns an empty Shape.
func New() *Shape {
	return &Shape{dirs: make(map[[2]int]Direction)}
}

// SetDirection records that the segment from u to v runs in direction d,
// overwriting any previous value.
func (s *Shape) SetDirection(u, v int, d Direction) {
	s.dirs[[2]int{u, v}] = d
}

// GetDirection returns the recorded direction for (u,v) and true, or
// (0, false) if none is set.
func (s *Shape) GetDirection(u, v int) (Direction, bool) {
	d, ok := s.dirs[[2]int{u, v}]
	return d, ok
}

// Contains reports whether a direction is recorded for (u,v).
func (s *Shape) Contains(u, v int) bool {
	_, ok := s.dirs[[2]int{u, v}]
	return ok
}

// RemoveDirection deletes the recorded direction for (u,v), if any. Returns
// ErrDirectionNotSet if nothing was recorded.
func (s *Shape) RemoveDirection(u, v int) error {
	if _, ok := s.dirs[[2]int{u, v}]; !ok {
		return fmt.Errorf("RemoveDirection(%d,%d): %w", u, v, ErrDirectionNotSet)
	}
	delete(s.dirs, [2]int{u, v})

	return nil
}

// IsUp, IsDown, IsLeft, IsRight report the recorded direction for (u,v);
// all return false if no direction is recorded.
func (s *Shape) IsUp(u, v int) bool    { d, ok := s.GetDirection(u, v); return ok && d == Up }
func (s *Shape) IsDown(u, v int) bool  { d, ok := s.GetDirection(u, v); return ok && d == Down }
func (s *Shape) IsLeft(u, v int) bool  { d, ok := s.GetDirection(u, v); return ok && d == Left }
func (s *Shape) IsRight(u, v int) bool { d, ok := s.GetDirection(u, v); return ok && d == Right }

// IsHorizontal reports whether (u,v) is recorded as Left or Right.
func (s *Shape) IsHorizontal(u, v int) bool {
	d, ok := s.GetDirection(u, v)
	return ok && IsHorizontal(d)
}

// IsVertical reports whether (u,v) is recorded as Up or Down.
func (s *Shape) IsVertical(u, v int) bool {
	d, ok := s.GetDirection(u, v)
	return ok && IsVertical(d)
}

// Len returns the number of recorded incidences.
func (s *Shape) Len() int { return len(s.dirs) }

func (s *Shape) String() string {
	return fmt.Sprintf("Shape(%d incidences)", len(s.dirs))
}
