package manager

import (
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

func TestCollisionManagerCheck(t *testing.T) {
	cm := NewCollisionManager(types.NewGrid(20, 20))
	body := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	tests := []struct {
		name string
		pos  types.Point
		want types.CollisionType
	}{
		{"free cell", types.Point{X: 6, Y: 5}, types.NoCollision},
		{"left of board", types.Point{X: -1, Y: 5}, types.WallCollision},
		{"below board", types.Point{X: 5, Y: 20}, types.WallCollision},
		{"body", types.Point{X: 4, Y: 5}, types.SelfCollision},
		{"tail", types.Point{X: 3, Y: 5}, types.SelfCollision},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cm.Check(tc.pos, body); got != tc.want {
				t.Errorf("Check(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func newFoodManager(extent int, seed uint64) *FoodManager {
	grid := types.NewGrid(10, extent)
	return NewFoodManager(grid, NewCollisionManager(grid), rand.New(rand.NewSource(seed)))
}

func TestPlaceFoodAvoidsOccupied(t *testing.T) {
	fm := newFoodManager(5, 7)
	var occupied []types.Point
	for x := 0; x < 5; x++ {
		for y := 0; y < 4; y++ {
			occupied = append(occupied, types.Point{X: x, Y: y})
		}
	}

	for i := 0; i < 200; i++ {
		food, err := fm.PlaceFood(occupied)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if food.Y != 4 || food.X < 0 || food.X >= 5 {
			t.Fatalf("food %v placed on an occupied or off-grid cell", food)
		}
	}
}

func TestPlaceFoodScanFallback(t *testing.T) {
	fm := newFoodManager(4, 3)
	fm.SetMaxAttempts(0)

	var occupied []types.Point
	for i := 0; i < 16; i++ {
		p := types.NewGrid(10, 4).CellAt(i)
		if p != (types.Point{X: 2, Y: 3}) {
			occupied = append(occupied, p)
		}
	}

	food, err := fm.PlaceFood(occupied)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if food != (types.Point{X: 2, Y: 3}) {
		t.Errorf("expected the single free cell (2,3), got %v", food)
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	fm := newFoodManager(3, 1)
	var occupied []types.Point
	for i := 0; i < 9; i++ {
		occupied = append(occupied, types.NewGrid(10, 3).CellAt(i))
	}

	_, err := fm.PlaceFood(occupied)
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("expected ErrBoardFull, got %v", err)
	}
}

func TestPlaceFoodDeterministicForSeed(t *testing.T) {
	a := newFoodManager(20, 42)
	b := newFoodManager(20, 42)
	occupied := []types.Point{{X: 5, Y: 5}}
	for i := 0; i < 10; i++ {
		fa, _ := a.PlaceFood(occupied)
		fb, _ := b.PlaceFood(occupied)
		if fa != fb {
			t.Fatalf("draw %d differs: %v vs %v", i, fa, fb)
		}
	}
}

func TestStateManagerResetBudget(t *testing.T) {
	sm := NewStateManager(DefaultMaxResets)

	for i := 1; i <= DefaultMaxResets; i++ {
		sm.AddPoint()
		if !sm.Die() {
			t.Fatalf("life %d: Die should succeed while playing", i)
		}
		if sm.State() != Dead {
			t.Fatalf("expected Dead, got %v", sm.State())
		}
		if !sm.ResolveDeath() {
			t.Fatalf("life %d: expected a reset", i)
		}
		if sm.ResetCount() != i {
			t.Errorf("resetCount = %d, want %d", sm.ResetCount(), i)
		}
		if sm.Score() != 0 || sm.State() != Playing {
			t.Errorf("reset should zero the score and resume play")
		}
	}

	sm.Die()
	if sm.ResolveDeath() {
		t.Fatal("no reset expected once the budget is spent")
	}
	if sm.State() != GameOver {
		t.Errorf("expected GameOver, got %v", sm.State())
	}
	if sm.ResetCount() != DefaultMaxResets {
		t.Errorf("resetCount changed on game over: %d", sm.ResetCount())
	}
	if got := len(sm.ScoreHistory()); got != DefaultMaxResets+1 {
		t.Errorf("expected %d finished lives, got %d", DefaultMaxResets+1, got)
	}
}

func TestStateManagerRestartAndExit(t *testing.T) {
	sm := NewStateManager(0)
	sm.AddPoint()
	sm.AddPoint()

	if sm.Restart() {
		t.Error("Restart must be refused while playing")
	}
	sm.Die()
	sm.ResolveDeath()
	if sm.State() != GameOver {
		t.Fatalf("expected GameOver with no budget, got %v", sm.State())
	}
	if sm.HighScore() != 2 {
		t.Errorf("high score = %d, want 2", sm.HighScore())
	}

	if !sm.Restart() {
		t.Fatal("Restart should succeed after GameOver")
	}
	if sm.ResetCount() != 0 || sm.Score() != 0 || sm.State() != Playing {
		t.Error("Restart should zero counters and resume play")
	}

	sm.Die()
	sm.ResolveDeath()
	if !sm.Exit() || sm.State() != Exited {
		t.Error("Exit should end the session from GameOver")
	}
	if sm.Restart() || sm.AddPoint() != 0 {
		t.Error("an exited session must not change")
	}
}

func TestStateManagerWin(t *testing.T) {
	sm := NewStateManager(3)
	sm.AddPoint()
	if !sm.Win() {
		t.Fatal("Win should succeed while playing")
	}
	if sm.State() != GameOver || !sm.Won() {
		t.Errorf("expected a won GameOver, got %v won=%v", sm.State(), sm.Won())
	}
	sm.Restart()
	if sm.Won() {
		t.Error("Restart should clear the win flag")
	}
}
