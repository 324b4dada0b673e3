// Package config holds the immutable settings of a game session and loads
// them from an optional YAML file.
package config

import (
	"os"
	"time"

	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRows         = 15
	DefaultCols         = 17
	DefaultMoveInterval = 450 * time.Millisecond
	DefaultFoodInterval = 3 * time.Second
	DefaultDirection    = "right"
)

type Config struct {
	Grid types.Grid `yaml:"grid"`
	// Start is the head position after (re)start. Nil means the grid center.
	Start        *types.Point  `yaml:"start"`
	Direction    string        `yaml:"direction"`
	MoveInterval time.Duration `yaml:"move-interval"`
	FoodInterval time.Duration `yaml:"food-interval"`
	// Seed for food placement. Zero picks a seed from the wall clock.
	Seed         uint64 `yaml:"seed"`
	FoodStrategy string `yaml:"food-strategy"`
}

func Default() Config {
	return Config{
		Grid:         types.Grid{Rows: DefaultRows, Cols: DefaultCols},
		Direction:    DefaultDirection,
		MoveInterval: DefaultMoveInterval,
		FoodInterval: DefaultFoodInterval,
		FoodStrategy: manager.Rejection.String(),
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Grid.Rows < 2 || c.Grid.Cols < 2 {
		return errors.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if start := c.StartPoint(); !c.Grid.Contains(start) {
		return errors.Errorf("start %s outside %dx%d grid", start, c.Grid.Rows, c.Grid.Cols)
	}
	if _, err := types.ParseDirection(c.Direction); err != nil {
		return errors.Wrap(err, "invalid start direction")
	}
	if c.MoveInterval <= 0 {
		return errors.Errorf("move interval must be positive, got %s", c.MoveInterval)
	}
	if c.FoodInterval <= 0 {
		return errors.Errorf("food interval must be positive, got %s", c.FoodInterval)
	}
	if _, err := manager.ParseSpawnStrategy(c.FoodStrategy); err != nil {
		return errors.Wrap(err, "invalid food strategy")
	}
	return nil
}

func (c Config) StartPoint() types.Point {
	if c.Start != nil {
		return *c.Start
	}
	return c.Grid.Center()
}

// Heading returns the start direction. Call Validate first; an invalid
// value falls back to Right.
func (c Config) Heading() types.Direction {
	dir, err := types.ParseDirection(c.Direction)
	if err != nil {
		return types.Right
	}
	return dir
}

func (c Config) Strategy() manager.SpawnStrategy {
	s, _ := manager.ParseSpawnStrategy(c.FoodStrategy)
	return s
}
