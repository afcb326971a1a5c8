package game

import (
	"fmt"
	"math"
)

// Direction is an action an agent can take on the board.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Stop
)

// Directions lists every move in the order legal actions are generated.
var Directions = []Direction{North, South, East, West, Stop}

var directionNames = map[Direction]string{
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
	Stop:  "Stop",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Reverse returns the opposite direction. Stop reverses to itself.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// ParseDirection accepts the names produced by String, case sensitive.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return Stop, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Position is a board cell. (0,0) is the bottom-left corner and y grows northwards.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the neighboring cell in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		return Position{p.X, p.Y + 1}
	case South:
		return Position{p.X, p.Y - 1}
	case East:
		return Position{p.X + 1, p.Y}
	case West:
		return Position{p.X - 1, p.Y}
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func EuclideanDistance(a, b Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
