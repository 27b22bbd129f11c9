package entity

import (
	"snake-arcade/game/types"
)

type Color struct {
	R, G, B uint8
}

// Green is the body colour of the classic canvas snake.
var Green = Color{R: 0, G: 255, B: 0}

// TickResult is the outcome of advancing the snake by one cell.
type TickResult int

const (
	Moved TickResult = iota
	Ate
	Died
)

func (r TickResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Died:
		return "died"
	}
	return "unknown"
}

// Collider decides whether a candidate head position is fatal for a body.
type Collider interface {
	Check(pos types.Point, body []types.Point) types.CollisionType
}

// Snake is the player body, head first.
type Snake struct {
	Body          []types.Point
	Direction     types.Direction
	LastCollision types.CollisionType
	Color         Color

	pending  types.Direction
	collider Collider
}

func NewSnake(startPos types.Point, dir types.Direction, collider Collider) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
		Color:     Green,
		collider:  collider,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether p is any body cell.
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// Pending returns the buffered direction request, NoDirection if none.
func (s *Snake) Pending() types.Direction {
	return s.pending
}

// SetDirection buffers a turn for the next tick. A 180° reversal of the
// current heading is silently dropped; a later valid request replaces an
// earlier one.
func (s *Snake) SetDirection(dir types.Direction) {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return
	}
	s.pending = dir
}

// Tick advances the snake by one cell towards food.
//
// The collision check runs against the pre-move body, so the tail cell is
// still occupied even though it would be vacated by this move. On Died the
// snake is left exactly as it was.
func (s *Snake) Tick(food types.Point) TickResult {
	dir := s.Direction
	if s.pending != types.NoDirection {
		dir = s.pending
	}

	newHead := s.Head().Add(dir.Vector())

	if c := s.collider.Check(newHead, s.Body); c != types.NoCollision {
		s.LastCollision = c
		return Died
	}

	s.Direction = dir
	s.pending = types.NoDirection
	s.Body = append([]types.Point{newHead}, s.Body...)

	if newHead == food {
		return Ate
	}

	s.Body = s.Body[:len(s.Body)-1]
	return Moved
}
