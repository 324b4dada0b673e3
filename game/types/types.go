package types

import (
	"fmt"
	"strings"
)

// Grid represents the game grid dimensions
type Grid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Center returns the middle cell, rounded down.
func (g Grid) Center() Point {
	return Point{Row: g.Rows / 2, Col: g.Cols / 2}
}

type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Add offsets p by d and returns the result.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four cardinal directions. None is the zero value
// and means "no intent".
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Delta converts a Direction to a one-cell movement vector.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{Row: -1}
	case Right:
		return Point{Col: 1}
	case Down:
		return Point{Row: 1}
	case Left:
		return Point{Col: -1}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction. None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// TurnLeft returns the direction after a 90° counter-clockwise rotation.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a 90° clockwise rotation.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Directions lists the four movement directions in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// ParseDirection parses the lower-case name of a direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	}
	return None, fmt.Errorf("unknown direction %q", s)
}

type Status int

const (
	Running Status = iota
	Ended
)

func (s Status) String() string {
	if s == Running {
		return "running"
	}
	return "ended"
}

// EndReason explains why a session stopped.
type EndReason int

const (
	NotEnded EndReason = iota
	SelfCollision
	WallBlocked
	Victory
)

func (r EndReason) String() string {
	switch r {
	case SelfCollision:
		return "self-collision"
	case WallBlocked:
		return "wall-blocked"
	case Victory:
		return "victory"
	default:
		return "none"
	}
}

// Outcome is the end-of-session summary handed to the presentation layer.
type Outcome struct {
	Reason EndReason
	Length int
}
