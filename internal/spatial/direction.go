package spatial

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDirection = errors.New("unknown direction")

// Direction is one of the 8 compass points. The numeric value is the position
// on the clock, so turning is modular addition.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

const clockSize = 8

// Turn is an offset on the clock, in eighths of a full rotation.
type Turn uint8

const (
	TurnForward   Turn = 0
	TurnRight     Turn = 2
	TurnPullRight Turn = 3
	TurnBackward  Turn = 4
	TurnPullLeft  Turn = 5
	TurnLeft      Turn = 6
)

var offsets = [clockSize]Coordinate{
	North:     {Row: -1, Col: 0},
	NorthEast: {Row: -1, Col: 1},
	East:      {Row: 0, Col: 1},
	SouthEast: {Row: 1, Col: 1},
	South:     {Row: 1, Col: 0},
	SouthWest: {Row: 1, Col: -1},
	West:      {Row: 0, Col: -1},
	NorthWest: {Row: -1, Col: -1},
}

var codes = [clockSize]string{"No", "Ne", "Ea", "Se", "So", "Sw", "We", "Nw"}

var longNames = [clockSize]string{"north", "ne", "east", "se", "south", "sw", "west", "nw"}

// Directions returns all directions in clock order, starting at North.
func Directions() []Direction {
	out := make([]Direction, clockSize)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// ParseDirection accepts a two-character code ("No", "Sw") or a long name
// ("north", "sw").
func ParseDirection(s string) (Direction, error) {
	for i, code := range codes {
		if s == code {
			return Direction(i), nil
		}
	}
	lower := strings.ToLower(s)
	for i, name := range longNames {
		if lower == name {
			return Direction(i), nil
		}
	}
	switch lower {
	case "northeast":
		return NorthEast, nil
	case "southeast":
		return SouthEast, nil
	case "southwest":
		return SouthWest, nil
	case "northwest":
		return NorthWest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

func (d Direction) Valid() bool { return d < clockSize }

func (d Direction) Turn(t Turn) Direction {
	return Direction((uint8(d) + uint8(t)) % clockSize)
}

func (d Direction) Forward() Direction   { return d.Turn(TurnForward) }
func (d Direction) Right() Direction     { return d.Turn(TurnRight) }
func (d Direction) Backward() Direction  { return d.Turn(TurnBackward) }
func (d Direction) Left() Direction      { return d.Turn(TurnLeft) }
func (d Direction) PullRight() Direction { return d.Turn(TurnPullRight) }
func (d Direction) PullLeft() Direction  { return d.Turn(TurnPullLeft) }

// Offset is the unit step for the direction.
func (d Direction) Offset() Coordinate { return offsets[d%clockSize] }

// Notation is the two-character code used in game records.
func (d Direction) Notation() string { return codes[d%clockSize] }

func (d Direction) String() string { return longNames[d%clockSize] }

func (d Direction) Octant() Octant {
	if d%2 == 0 {
		return Cardinal
	}
	return Diagonal
}
