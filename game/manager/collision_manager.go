package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

// EndReason maps a collision to the reason that ends the session.
func (c CollisionType) EndReason() types.EndReason {
	switch c {
	case WallCollision:
		return types.WallBlocked
	case SelfCollision:
		return types.SelfCollision
	default:
		return types.NotEnded
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextPosition offsets head by one cell in dir, clamped to the grid. A
// move into a wall leaves the head where it is.
func (cm *CollisionManager) NextPosition(head types.Point, dir types.Direction) types.Point {
	next := head.Add(dir.Delta())
	next.Row = clamp(next.Row, 0, cm.grid.Rows-1)
	next.Col = clamp(next.Col, 0, cm.grid.Cols-1)
	return next
}

// Check classifies a candidate head position for snake.
func (cm *CollisionManager) Check(snake *entity.Snake, candidate types.Point) CollisionType {
	if candidate == snake.Head {
		return WallCollision
	}
	if snake.HitsBody(candidate) {
		return SelfCollision
	}
	return NoCollision
}

// IsDanger reports whether moving the head of snake in dir would end the
// session.
func (cm *CollisionManager) IsDanger(snake *entity.Snake, dir types.Direction) bool {
	return cm.Check(snake, cm.NextPosition(snake.Head, dir)) != NoCollision
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
