package entity

import (
	"gridsnake/game/types"
)

// Snake holds the head and the trailing body segments. The body is stored
// tail first so that moving appends the old head and trims from the front.
type Snake struct {
	Head types.Point
	body []types.Point

	// Heading is the direction applied at the last movement step.
	Heading types.Direction
	// Pending is the direction the next movement step will use.
	Pending types.Direction
}

func NewSnake(start types.Point, dir types.Direction) *Snake {
	return &Snake{
		Head:    start,
		body:    make([]types.Point, 0, 16),
		Heading: dir,
		Pending: dir,
	}
}

// SetDirection queues dir for the next step unless it would reverse the
// snake onto itself.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Heading.Opposite() {
		return false
	}
	s.Pending = dir
	return true
}

// Move pushes the current head onto the body and places the head at
// newHead. Unless grow is set the tail segment is dropped.
func (s *Snake) Move(newHead types.Point, grow bool) {
	s.body = append(s.body, s.Head)
	s.Head = newHead
	if !grow {
		s.RemoveTail()
	}
	s.Heading = s.Pending
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 0 {
		s.body = s.body[1:]
	}
}

// Len returns the total number of occupied cells, head included.
func (s *Snake) Len() int {
	return len(s.body) + 1
}

// Body returns a copy of the body segments, the cell right behind the head
// first and the tail last.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, len(s.body))
	for i, p := range s.body {
		out[len(s.body)-1-i] = p
	}
	return out
}

// HitsBody reports whether p is on any body segment.
func (s *Snake) HitsBody(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// Occupies reports whether p is the head or any body segment.
func (s *Snake) Occupies(p types.Point) bool {
	return s.Head == p || s.HitsBody(p)
}
