package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %s", err)
	}
	if cfg.StartPoint() != (types.Point{Row: 7, Col: 8}) {
		t.Errorf("Expected start at the center, got %s", cfg.StartPoint())
	}
	if cfg.Heading() != types.Right {
		t.Errorf("Expected right, got %s", cfg.Heading())
	}
	if cfg.Strategy() != manager.Rejection {
		t.Errorf("Expected rejection sampling, got %s", cfg.Strategy())
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid != Default().Grid {
		t.Errorf("Expected default grid, got %+v", cfg.Grid)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
grid:
  rows: 10
  cols: 12
start:
  row: 1
  col: 2
direction: down
move-interval: 200ms
seed: 99
food-strategy: free-cells
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if cfg.Grid != (types.Grid{Rows: 10, Cols: 12}) {
		t.Errorf("Unexpected grid %+v", cfg.Grid)
	}
	if cfg.StartPoint() != (types.Point{Row: 1, Col: 2}) {
		t.Errorf("Unexpected start %s", cfg.StartPoint())
	}
	if cfg.Heading() != types.Down {
		t.Errorf("Unexpected direction %s", cfg.Heading())
	}
	if cfg.MoveInterval != 200*time.Millisecond {
		t.Errorf("Unexpected move interval %s", cfg.MoveInterval)
	}
	if cfg.FoodInterval != DefaultFoodInterval {
		t.Errorf("Expected the default food interval, got %s", cfg.FoodInterval)
	}
	if cfg.Seed != 99 || cfg.Strategy() != manager.FreeCells {
		t.Errorf("Unexpected seed %d / strategy %s", cfg.Seed, cfg.Strategy())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Expected an error for broken YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"one row", func(c *Config) { c.Grid.Rows = 1 }},
		{"no cols", func(c *Config) { c.Grid.Cols = 0 }},
		{"start outside", func(c *Config) { c.Start = &types.Point{Row: 15, Col: 0} }},
		{"negative start", func(c *Config) { c.Start = &types.Point{Row: 0, Col: -1} }},
		{"bad direction", func(c *Config) { c.Direction = "north" }},
		{"zero move interval", func(c *Config) { c.MoveInterval = 0 }},
		{"negative food interval", func(c *Config) { c.FoodInterval = -time.Second }},
		{"bad strategy", func(c *Config) { c.FoodStrategy = "sometimes" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}
