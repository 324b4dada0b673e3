package manager

import (
	"fmt"
	"strings"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// SpawnStrategy selects how a free cell for food is picked.
type SpawnStrategy int

const (
	// Rejection draws random cells until one is free.
	Rejection SpawnStrategy = iota
	// FreeCells enumerates the free cells and picks one of them.
	FreeCells
)

func (s SpawnStrategy) String() string {
	if s == FreeCells {
		return "free-cells"
	}
	return "rejection"
}

func ParseSpawnStrategy(s string) (SpawnStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rejection":
		return Rejection, nil
	case "free-cells":
		return FreeCells, nil
	}
	return Rejection, fmt.Errorf("unknown food strategy %q", s)
}

type FoodManager struct {
	grid     types.Grid
	rng      *rand.Rand
	strategy SpawnStrategy
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, strategy SpawnStrategy) *FoodManager {
	return &FoodManager{
		grid:     grid,
		rng:      rng,
		strategy: strategy,
	}
}

// GenerateFood returns a cell not occupied by snake. ok is false when the
// grid has no free cell left.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	if snake.Len() >= fm.grid.Cells() {
		return types.Point{}, false
	}

	if fm.strategy == FreeCells {
		return fm.pickFreeCell(snake)
	}

	for {
		food = types.Point{
			Row: fm.rng.Intn(fm.grid.Rows),
			Col: fm.rng.Intn(fm.grid.Cols),
		}
		if !snake.Occupies(food) {
			return food, true
		}
	}
}

func (fm *FoodManager) pickFreeCell(snake *entity.Snake) (types.Point, bool) {
	free := make([]types.Point, 0, fm.grid.Cells()-snake.Len())
	for row := 0; row < fm.grid.Rows; row++ {
		for col := 0; col < fm.grid.Cols; col++ {
			p := types.Point{Row: row, Col: col}
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
