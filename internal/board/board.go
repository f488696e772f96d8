package board

import (
	"philosophy/internal/spatial"
	"philosophy/internal/tile"
)

// Board is an immutable snapshot of tile positions. The zero value is an
// empty board.
type Board struct {
	cells [SpaceCount]*tile.Tile
}

func New() Board { return Board{} }

// Space looks a cell up by name.
func (b Board) Space(name string) (Space, bool) {
	i, ok := topo.index[name]
	if !ok {
		return Space{}, false
	}
	return b.space(i), true
}

// SpaceAt looks a cell up by coordinate.
func (b Board) SpaceAt(c spatial.Coordinate) (Space, bool) {
	i, ok := topo.byCoord[c]
	if !ok {
		return Space{}, false
	}
	return b.space(i), true
}

// Spaces returns every cell in canonical order.
func (b Board) Spaces() []Space {
	out := make([]Space, SpaceCount)
	for i := range out {
		out[i] = b.space(i)
	}
	return out
}

func (b Board) space(i int) Space {
	s := Space{Name: topo.names[i], Coordinate: topo.coordinates[i]}
	if t := b.cells[i]; t != nil {
		cp := *t
		s.tile = &cp
	}
	return s
}

// With returns a copy of b with name set to t. A nil tile clears the cell.
// Unknown names leave the copy unchanged.
func (b Board) With(name string, t *tile.Tile) Board {
	i, ok := topo.index[name]
	if !ok {
		return b
	}
	if t != nil {
		cp := *t
		t = &cp
	}
	b.cells[i] = t
	return b
}

// ActivationTarget returns the space the tile at from is aimed at. It is false
// when from is empty or the target lies off the board.
func (b Board) ActivationTarget(from string) (Space, bool) {
	src, ok := b.Space(from)
	if !ok {
		return Space{}, false
	}
	t, ok := src.Tile()
	if !ok {
		return Space{}, false
	}
	return b.SpaceAt(t.TargetFrom(src.Coordinate))
}

// Tiles lists the occupied spaces whose tile belongs to owner.
func (b Board) Tiles(owner string) []Space {
	var out []Space
	for i, t := range b.cells {
		if t != nil && t.Owner == owner {
			out = append(out, b.space(i))
		}
	}
	return out
}

// WithoutOwner removes every tile belonging to owner.
func (b Board) WithoutOwner(owner string) Board {
	for i, t := range b.cells {
		if t != nil && t.Owner == owner {
			b.cells[i] = nil
		}
	}
	return b
}

// Occupied counts the tiles on the board.
func (b Board) Occupied() int {
	n := 0
	for _, t := range b.cells {
		if t != nil {
			n++
		}
	}
	return n
}

// PlayableAreaFull reports whether all nine centre cells hold a tile.
func (b Board) PlayableAreaFull() bool {
	for i := 0; i < 9; i++ {
		if b.cells[i] == nil {
			return false
		}
	}
	return true
}
