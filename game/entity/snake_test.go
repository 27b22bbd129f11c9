package entity_test

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

func newSnake(body []types.Point, dir types.Direction) *entity.Snake {
	grid := types.NewGrid(types.DefaultCellSize, types.DefaultExtent)
	s := entity.NewSnake(body[0], dir, manager.NewCollisionManager(grid))
	s.Body = append([]types.Point(nil), body...)
	return s
}

func TestTickMovesRight(t *testing.T) {
	s := newSnake([]types.Point{{X: 5, Y: 5}}, types.Right)

	res := s.Tick(types.Point{X: 15, Y: 15})
	if res != entity.Moved {
		t.Fatalf("expected Moved, got %v", res)
	}
	if s.Len() != 1 || s.Head() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("expected body [(6,5)], got %v", s.Body)
	}
}

func TestTickEatsAndGrows(t *testing.T) {
	s := newSnake([]types.Point{{X: 5, Y: 5}}, types.Right)

	res := s.Tick(types.Point{X: 6, Y: 5})
	if res != entity.Ate {
		t.Fatalf("expected Ate, got %v", res)
	}
	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}
	if len(s.Body) != len(want) {
		t.Fatalf("expected %v, got %v", want, s.Body)
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, s.Body[i], want[i])
		}
	}
}

func TestTickWallDeathLeavesBody(t *testing.T) {
	tests := []struct {
		name string
		head types.Point
		dir  types.Direction
	}{
		{"left wall", types.Point{X: 0, Y: 5}, types.Left},
		{"right wall", types.Point{X: 19, Y: 5}, types.Right},
		{"top wall", types.Point{X: 5, Y: 0}, types.Up},
		{"bottom wall", types.Point{X: 5, Y: 19}, types.Down},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSnake([]types.Point{tc.head}, tc.dir)
			if res := s.Tick(types.Point{X: 10, Y: 10}); res != entity.Died {
				t.Fatalf("expected Died, got %v", res)
			}
			if s.Len() != 1 || s.Head() != tc.head {
				t.Errorf("body changed on death: %v", s.Body)
			}
			if s.LastCollision != types.WallCollision {
				t.Errorf("expected wall collision, got %v", s.LastCollision)
			}
		})
	}
}

func TestTickIntoOwnTailDies(t *testing.T) {
	// A 2x2 loop: the head moving into the tail cell dies even though the
	// tail would be vacated by the same move.
	body := []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	s := newSnake(body, types.Up)
	s.SetDirection(types.Right)

	if res := s.Tick(types.Point{X: 0, Y: 0}); res != entity.Died {
		t.Fatalf("expected Died when entering the tail cell, got %v", res)
	}
	if s.LastCollision != types.SelfCollision {
		t.Errorf("expected self collision, got %v", s.LastCollision)
	}
	if s.Len() != len(body) {
		t.Errorf("body length changed on death: %v", s.Body)
	}
	if s.Direction != types.Up {
		t.Errorf("direction committed on death: %v", s.Direction)
	}
}

func TestSetDirectionRejectsReverse(t *testing.T) {
	s := newSnake([]types.Point{{X: 5, Y: 5}}, types.Right)

	s.SetDirection(types.Left)
	if s.Pending() != types.NoDirection {
		t.Errorf("reverse request should be dropped, pending = %v", s.Pending())
	}
	s.Tick(types.Point{})
	if s.Direction != types.Right {
		t.Errorf("expected direction RIGHT, got %v", s.Direction)
	}
}

func TestSetDirectionCoalesces(t *testing.T) {
	s := newSnake([]types.Point{{X: 5, Y: 5}}, types.Right)

	s.SetDirection(types.Up)
	s.SetDirection(types.Down)
	s.Tick(types.Point{})

	if s.Direction != types.Down {
		t.Errorf("latest request should win, got %v", s.Direction)
	}
	if s.Head() != (types.Point{X: 5, Y: 6}) {
		t.Errorf("expected head (5,6), got %v", s.Head())
	}
}

func TestSetDirectionChecksCommittedHeading(t *testing.T) {
	// Up then Left between two ticks must not let the snake reverse from
	// Right into its own neck.
	s := newSnake([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, types.Right)

	s.SetDirection(types.Up)
	s.SetDirection(types.Left)
	if s.Pending() != types.Up {
		t.Fatalf("expected pending UP, got %v", s.Pending())
	}
	if res := s.Tick(types.Point{}); res != entity.Moved {
		t.Errorf("expected Moved, got %v", res)
	}
}

func TestLengthGrowsByAtMostOne(t *testing.T) {
	s := newSnake([]types.Point{{X: 2, Y: 2}}, types.Right)
	foods := []types.Point{{X: 3, Y: 2}, {X: 4, Y: 2}, {X: 9, Y: 9}, {X: 9, Y: 9}, {X: 6, Y: 3}}
	turns := []types.Direction{types.Right, types.Right, types.Right, types.Down, types.Left}

	for i, food := range foods {
		s.SetDirection(turns[i])
		before := s.Len()
		res := s.Tick(food)
		if res == entity.Died {
			t.Fatalf("unexpected death at step %d", i)
		}
		after := s.Len()
		if after != before && after != before+1 {
			t.Fatalf("step %d: length went from %d to %d", i, before, after)
		}
		seen := make(map[types.Point]bool)
		for _, p := range s.Body {
			if seen[p] {
				t.Fatalf("step %d: body overlaps itself at %v", i, p)
			}
			seen[p] = true
		}
	}
}
