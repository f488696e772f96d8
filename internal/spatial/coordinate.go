package spatial

import "fmt"

type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Neighbor pairs a direction with the coordinate one step away in it.
type Neighbor struct {
	Direction  Direction
	Coordinate Coordinate
}

// Translate applies the direction's unit offset amount times.
func (c Coordinate) Translate(d Direction, amount int) Coordinate {
	off := d.Offset()
	return Coordinate{Row: c.Row + off.Row*amount, Col: c.Col + off.Col*amount}
}

// EachDirection yields the 8 surrounding coordinates in clock order. No
// bounds are applied here; the board decides what exists.
func (c Coordinate) EachDirection() []Neighbor {
	out := make([]Neighbor, 0, clockSize)
	for _, d := range Directions() {
		out = append(out, Neighbor{Direction: d, Coordinate: c.Translate(d, 1)})
	}
	return out
}

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }
