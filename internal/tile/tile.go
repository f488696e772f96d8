package tile

import "philosophy/internal/spatial"

// Tile is an idea tile on the board. It is a value: changing its facing
// produces a new Tile.
type Tile struct {
	Owner  string            `json:"owner"`
	Kind   Kind              `json:"kind"`
	Facing spatial.Direction `json:"facing"`
}

func New(owner string, kind Kind, facing spatial.Direction) Tile {
	return Tile{Owner: owner, Kind: kind, Facing: facing}
}

// Name identifies the tile within a game. Every player holds exactly one
// tile of each kind, so owner and kind code are unique.
func (t Tile) Name() string { return t.Owner + t.Kind.Code() }

// Notation renders owner, kind and facing, e.g. "InPuNo".
func (t Tile) Notation() string { return t.Owner + t.Kind.Code() + t.Facing.Notation() }

func (t Tile) WithFacing(d spatial.Direction) Tile {
	t.Facing = d
	return t
}

// CanFace reports whether d is in the octant the tile's kind is restricted to.
func (t Tile) CanFace(d spatial.Direction) bool { return t.Kind.Octant().Contains(d) }

// TargetFrom is the coordinate the tile activates against when standing at c.
func (t Tile) TargetFrom(c spatial.Coordinate) spatial.Coordinate {
	return c.Translate(t.Facing, t.Kind.TargetDistance())
}

func (t Tile) String() string { return t.Notation() }
