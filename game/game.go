package game

import (
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// World is the snake simulation. It is mutated only by MoveStep, SpawnStep,
// SetDirectionIntent and Reset, and knows nothing about rendering.
type World struct {
	grid     types.Grid
	start    types.Point
	startDir types.Direction

	snake   *entity.Snake
	food    types.Point
	hasFood bool
	status  types.Status
	reason  types.EndReason
	steps   int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager

	// OnEnd is called once when the world leaves the Running state.
	OnEnd func(types.Outcome)
}

func NewWorld(grid types.Grid, start types.Point, dir types.Direction, foodMgr *manager.FoodManager) *World {
	w := &World{
		grid:         grid,
		start:        start,
		startDir:     dir,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      foodMgr,
	}
	w.Reset()
	return w
}

// Reset puts the world back into its initial state.
func (w *World) Reset() {
	w.snake = entity.NewSnake(w.start, w.startDir)
	w.food = types.Point{}
	w.hasFood = false
	w.status = types.Running
	w.reason = types.NotEnded
	w.steps = 0
}

// SetDirectionIntent queues dir for the next movement step. Reversing into
// the segment behind the head is refused, as is any change after the end.
func (w *World) SetDirectionIntent(dir types.Direction) bool {
	if w.status != types.Running {
		return false
	}
	return w.snake.SetDirection(dir)
}

// MoveStep advances the snake by one cell.
func (w *World) MoveStep() {
	if w.status != types.Running {
		return
	}

	newHead := w.collisionMgr.NextPosition(w.snake.Head, w.snake.Pending)
	if collision := w.collisionMgr.Check(w.snake, newHead); collision != manager.NoCollision {
		w.end(collision.EndReason())
		return
	}

	ate := w.hasFood && newHead == w.food
	if ate {
		w.hasFood = false
	}
	w.snake.Move(newHead, ate)
	w.steps++

	if w.snake.Len() == w.grid.Cells() {
		w.end(types.Victory)
	}
}

// SpawnStep places food on a free cell if there is none yet.
func (w *World) SpawnStep() {
	if w.status != types.Running || w.hasFood {
		return
	}
	food, ok := w.foodMgr.GenerateFood(w.snake)
	if !ok {
		return
	}
	w.food = food
	w.hasFood = true
}

func (w *World) end(reason types.EndReason) {
	w.status = types.Ended
	w.reason = reason
	if w.OnEnd != nil {
		w.OnEnd(w.Outcome())
	}
}

func (w *World) Grid() types.Grid {
	return w.grid
}

func (w *World) Head() types.Point {
	return w.snake.Head
}

// Body returns the body segments, neck first and tail last.
func (w *World) Body() []types.Point {
	return w.snake.Body()
}

func (w *World) Food() (types.Point, bool) {
	return w.food, w.hasFood
}

// Facing is the direction applied at the last movement step.
func (w *World) Facing() types.Direction {
	return w.snake.Heading
}

// Pending is the direction the next movement step will use.
func (w *World) Pending() types.Direction {
	return w.snake.Pending
}

func (w *World) Len() int {
	return w.snake.Len()
}

// Steps counts the successful movement steps since the last reset.
func (w *World) Steps() int {
	return w.steps
}

// Occupied reports whether p is covered by the snake.
func (w *World) Occupied(p types.Point) bool {
	return w.snake.Occupies(p)
}

// IsDanger reports whether a step in dir would end the session.
func (w *World) IsDanger(dir types.Direction) bool {
	return w.collisionMgr.IsDanger(w.snake, dir)
}

func (w *World) Status() types.Status {
	return w.status
}

func (w *World) IsRunning() bool {
	return w.status == types.Running
}

// Outcome returns the end reason and the snake length. Reason is NotEnded
// while the world is running.
func (w *World) Outcome() types.Outcome {
	return types.Outcome{Reason: w.reason, Length: w.snake.Len()}
}
