package manager

import (
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

func TestNextPositionClamps(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Rows: 3, Cols: 5})

	tests := []struct {
		head types.Point
		dir  types.Direction
		want types.Point
	}{
		{types.Point{Row: 1, Col: 1}, types.Up, types.Point{Row: 0, Col: 1}},
		{types.Point{Row: 0, Col: 1}, types.Up, types.Point{Row: 0, Col: 1}},
		{types.Point{Row: 2, Col: 1}, types.Down, types.Point{Row: 2, Col: 1}},
		{types.Point{Row: 1, Col: 0}, types.Left, types.Point{Row: 1, Col: 0}},
		{types.Point{Row: 1, Col: 4}, types.Right, types.Point{Row: 1, Col: 4}},
		{types.Point{Row: 1, Col: 3}, types.Right, types.Point{Row: 1, Col: 4}},
	}
	for _, tt := range tests {
		if got := cm.NextPosition(tt.head, tt.dir); got != tt.want {
			t.Errorf("NextPosition(%s, %s) = %s, want %s", tt.head, tt.dir, got, tt.want)
		}
	}
}

func TestCheck(t *testing.T) {
	grid := types.Grid{Rows: 5, Cols: 5}
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{Row: 2, Col: 0}, types.Right)
	snake.Move(types.Point{Row: 2, Col: 1}, true)
	snake.Move(types.Point{Row: 2, Col: 2}, true)

	if got := cm.Check(snake, snake.Head); got != WallCollision {
		t.Errorf("Expected wall collision, got %d", got)
	}
	if got := cm.Check(snake, types.Point{Row: 2, Col: 0}); got != SelfCollision {
		t.Errorf("Expected self collision on the tail, got %d", got)
	}
	if got := cm.Check(snake, types.Point{Row: 1, Col: 2}); got != NoCollision {
		t.Errorf("Expected no collision, got %d", got)
	}

	if cm.IsDanger(snake, types.Up) {
		t.Errorf("Expected up to be safe")
	}
	snake.Move(types.Point{Row: 3, Col: 2}, false)
	if !cm.IsDanger(snake, types.Up) {
		t.Errorf("Expected up to run into the body")
	}
	if cm.IsDanger(snake, types.Left) || cm.IsDanger(snake, types.Right) {
		t.Errorf("Expected left and right to be safe")
	}

	if WallCollision.EndReason() != types.WallBlocked || SelfCollision.EndReason() != types.SelfCollision {
		t.Errorf("Unexpected end reason mapping")
	}
}

func TestGenerateFood(t *testing.T) {
	grid := types.Grid{Rows: 3, Cols: 3}
	snake := entity.NewSnake(types.Point{Row: 0, Col: 0}, types.Right)
	snake.Move(types.Point{Row: 0, Col: 1}, true)
	snake.Move(types.Point{Row: 0, Col: 2}, true)
	snake.Move(types.Point{Row: 1, Col: 2}, true)

	for _, strategy := range []SpawnStrategy{Rejection, FreeCells} {
		fm := NewFoodManager(grid, rand.New(rand.NewSource(3)), strategy)
		seen := map[types.Point]bool{}
		for i := 0; i < 500; i++ {
			food, ok := fm.GenerateFood(snake)
			if !ok {
				t.Fatalf("%s: expected a free cell", strategy)
			}
			if snake.Occupies(food) || !grid.Contains(food) {
				t.Fatalf("%s: bad food position %s", strategy, food)
			}
			seen[food] = true
		}
		if len(seen) != grid.Cells()-snake.Len() {
			t.Errorf("%s: expected every free cell to be drawn, saw %d", strategy, len(seen))
		}
	}
}

func TestGenerateFoodFullGrid(t *testing.T) {
	grid := types.Grid{Rows: 1, Cols: 2}
	snake := entity.NewSnake(types.Point{Row: 0, Col: 0}, types.Right)
	snake.Move(types.Point{Row: 0, Col: 1}, true)

	for _, strategy := range []SpawnStrategy{Rejection, FreeCells} {
		fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), strategy)
		if _, ok := fm.GenerateFood(snake); ok {
			t.Errorf("%s: expected no food on a full grid", strategy)
		}
	}
}

func TestParseSpawnStrategy(t *testing.T) {
	for in, want := range map[string]SpawnStrategy{"": Rejection, "rejection": Rejection, "free-cells": FreeCells} {
		got, err := ParseSpawnStrategy(in)
		if err != nil || got != want {
			t.Errorf("ParseSpawnStrategy(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseSpawnStrategy("grid"); err == nil {
		t.Errorf("Expected an error")
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	if sm.AverageLength() != 0 {
		t.Errorf("Expected 0 average without games")
	}

	sm.Record(types.Outcome{Reason: types.WallBlocked, Length: 3})
	sm.Record(types.Outcome{Reason: types.Victory, Length: 9})
	sm.Record(types.Outcome{Reason: types.SelfCollision, Length: 6})

	if sm.GamesPlayed() != 3 || sm.Victories() != 1 || sm.HighScore() != 9 {
		t.Errorf("Unexpected totals: %d games, %d victories, best %d",
			sm.GamesPlayed(), sm.Victories(), sm.HighScore())
	}
	if sm.AverageLength() != 6 {
		t.Errorf("Expected average 6, got %f", sm.AverageLength())
	}

	for i := 0; i < MaxHistory; i++ {
		sm.Record(types.Outcome{Reason: types.WallBlocked, Length: 1})
	}
	history := sm.History()
	if len(history) != MaxHistory {
		t.Errorf("Expected %d entries, got %d", MaxHistory, len(history))
	}
	if sm.HighScore() != 9 || sm.GamesPlayed() != MaxHistory+3 {
		t.Errorf("Expected totals to survive trimming")
	}
	if sm.AverageLength() != 1 {
		t.Errorf("Expected average 1, got %f", sm.AverageLength())
	}
}

func TestRecentLengths(t *testing.T) {
	history := []types.Outcome{{Length: 3}, {Length: 5}, {Length: 2}}

	tests := []struct {
		n    int
		want string
	}{
		{10, "2 5 3"},
		{2, "2 5"},
		{0, ""},
	}
	for _, tt := range tests {
		if got := RecentLengths(history, tt.n); got != tt.want {
			t.Errorf("%d: expected %q, got %q", tt.n, tt.want, got)
		}
	}
	if got := RecentLengths(nil, 10); got != "" {
		t.Errorf("Expected an empty list, got %q", got)
	}
}
