package manager

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

// ErrBoardFull is returned when every cell of the grid is occupied.
var ErrBoardFull = errors.New("no free cell left for food")

// attemptsPerCell bounds random sampling before falling back to a scan of
// the free cells.
const attemptsPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	maxAttempts  int
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		maxAttempts:  attemptsPerCell * grid.Cells(),
	}
}

// SetMaxAttempts overrides the random sampling budget. n <= 0 skips
// sampling and always scans.
func (fm *FoodManager) SetMaxAttempts(n int) {
	fm.maxAttempts = n
}

// PlaceFood picks a uniformly random cell that is not in occupied.
func (fm *FoodManager) PlaceFood(occupied []types.Point) (types.Point, error) {
	if fm.isFull(occupied) {
		return types.Point{}, ErrBoardFull
	}

	for attempt := 0; attempt < fm.maxAttempts; attempt++ {
		food := fm.grid.RandomCell(fm.rng)
		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, nil
		}
	}

	free := fm.freeCells(occupied)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) isFull(occupied []types.Point) bool {
	if len(occupied) < fm.grid.Cells() {
		return false
	}
	seen := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if fm.grid.Contains(p) {
			seen[p] = struct{}{}
		}
	}
	return len(seen) >= fm.grid.Cells()
}

func (fm *FoodManager) freeCells(occupied []types.Point) []types.Point {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}
	var free []types.Point
	for i := 0; i < fm.grid.Cells(); i++ {
		p := fm.grid.CellAt(i)
		if _, ok := taken[p]; !ok {
			free = append(free, p)
		}
	}
	return free
}
