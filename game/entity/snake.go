package entity

import (
	"snake-powerups/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake keeps its body head-first: Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction

	// heading is the direction of the last completed move; turned is set
	// once Direction has been changed since then.
	heading types.Direction
	turned  bool
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.Right, // Start moving right
	}
}

// Move prepends newHead; the tail stays until RemoveTail is called.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.turned = false
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is the cell the head would enter on the next tick.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.Vector())
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection changes heading unless dir is the exact reverse of the
// direction the snake last moved in. Several turns between two moves are
// all checked against that same direction. It reports whether the change
// was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	moved := s.Direction
	if s.turned {
		moved = s.heading
	}
	if dir == moved.Opposite() {
		return false
	}
	if !s.turned {
		s.heading = s.Direction
		s.turned = true
	}
	s.Direction = dir
	return true
}

// Reset shrinks the snake back to a single segment facing right.
func (s *Snake) Reset(pos types.Point) {
	s.Body = []types.Point{pos}
	s.Direction = types.Right
	s.turned = false
}

// Cells returns a copy of the body for renderers.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
