package ai

import (
	"fmt"
	"math"

	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// View is the read-only part of the world the agent looks at.
type View interface {
	Head() types.Point
	Food() (types.Point, bool)
	IsDanger(dir types.Direction) bool
	Facing() types.Direction
	IsRunning() bool
	Outcome() types.Outcome
	Steps() int
	Len() int
}

type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (row, col)
	FoodDistance    int     // Manhattan distance to food, 0 without food
	HasFood         bool
	DangerDirs      [4]bool // Danger in each direction (up, right, down, left)
	Length          int
}

// NewState samples the agent's view of the world.
func NewState(v View) State {
	s := State{Length: v.Len()}

	head := v.Head()
	if food, ok := v.Food(); ok {
		s.HasFood = true
		s.RelativeFoodDir = [2]int{sign(food.Row - head.Row), sign(food.Col - head.Col)}
		s.FoodDistance = abs(food.Row-head.Row) + abs(food.Col-head.Col)
	}
	for i, dir := range types.Directions {
		s.DangerDirs[i] = v.IsDanger(dir)
	}
	return s
}

func (s State) key() string {
	return fmt.Sprintf("%d%d%t%t%t%t%t",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1], s.HasFood,
		s.DangerDirs[0], s.DangerDirs[1], s.DangerDirs[2], s.DangerDirs[3])
}

type QTable map[string]map[types.Direction]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	rng          *rand.Rand
}

func NewQLearning(rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

func (q *QLearning) GetAction(state State) types.Direction {
	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return types.Directions[q.rng.Intn(len(types.Directions))]
	}

	// Exploitation: best known action
	return q.getBestAction(state)
}

func (q *QLearning) row(key string) map[types.Direction]float64 {
	values, ok := q.QTable[key]
	if !ok {
		values = make(map[types.Direction]float64, len(types.Directions))
		for _, dir := range types.Directions {
			values[dir] = 0
		}
		q.QTable[key] = values
	}
	return values
}

func (q *QLearning) getBestAction(state State) types.Direction {
	values := q.row(state.key())

	bestAction := types.Up
	bestValue := math.Inf(-1)
	for _, dir := range types.Directions {
		if values[dir] > bestValue {
			bestValue = values[dir]
			bestAction = dir
		}
	}
	return bestAction
}

// Reward scores the transition from state to next after taking action.
// outcome is only looked at when ended is set.
func Reward(state State, action types.Direction, next State, ended bool, outcome types.Outcome) float64 {
	if ended {
		if outcome.Reason == types.Victory {
			return 1.0
		}
		return -1.0
	}

	var reward float64
	// Base reward for moving towards/away from food
	if state.HasFood && next.HasFood {
		distanceChange := next.FoodDistance - state.FoodDistance
		if distanceChange < 0 {
			reward = 0.5
		} else if distanceChange > 0 {
			reward = -0.3
		}
	}

	if next.Length > state.Length {
		reward = 1.0
	} else if next.DangerDirs[dirIndex(action)] {
		// Kept going towards a wall or the body
		reward = -1.0
	}
	return reward
}

// Update applies the Q-learning rule for one transition and returns the
// reward it used.
func (q *QLearning) Update(state State, action types.Direction, next State, ended bool, outcome types.Outcome) float64 {
	reward := Reward(state, action, next, ended, outcome)

	maxNextQ := 0.0
	if !ended {
		maxNextQ = math.Inf(-1)
		for _, value := range q.row(next.key()) {
			if value > maxNextQ {
				maxNextQ = value
			}
		}
	}

	values := q.row(state.key())
	currentQ := values[action]
	values[action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)

	q.TotalReward += reward
	return reward
}

func dirIndex(d types.Direction) int {
	for i, dir := range types.Directions {
		if dir == d {
			return i
		}
	}
	return 0
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
