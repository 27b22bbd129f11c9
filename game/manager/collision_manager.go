package manager

import (
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies a candidate head position against the walls and the
// given body. The whole body counts, tail included.
func (cm *CollisionManager) Check(pos types.Point, body []types.Point) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isBodyCollision(pos, body) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) isBodyCollision(pos types.Point, body []types.Point) bool {
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is on the board and free of
// every occupied cell.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied []types.Point) bool {
	return cm.Check(pos, occupied) == types.NoCollision
}
