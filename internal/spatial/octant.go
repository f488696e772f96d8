package spatial

// Octant is the class of directions a tile may face.
type Octant uint8

const (
	Cardinal Octant = iota
	Diagonal
)

// Directions lists the octant's members in clock order.
func (o Octant) Directions() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions() {
		if d.Octant() == o {
			out = append(out, d)
		}
	}
	return out
}

func (o Octant) Contains(d Direction) bool {
	return d.Valid() && d.Octant() == o
}

func (o Octant) String() string {
	if o == Diagonal {
		return "diagonal"
	}
	return "cardinal"
}
