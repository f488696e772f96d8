package board

import (
	"philosophy/internal/spatial"
	"philosophy/internal/tile"
)

// Space is a named cell together with whatever occupies it in a given board.
type Space struct {
	Name       string             `json:"name"`
	Coordinate spatial.Coordinate `json:"coordinate"`
	tile       *tile.Tile
}

func (s Space) Tile() (tile.Tile, bool) {
	if s.tile == nil {
		return tile.Tile{}, false
	}
	return *s.tile, true
}

func (s Space) Occupied() bool { return s.tile != nil }

// Playable is true only for the nine centre cells.
func (s Space) Playable() bool { return IsPlayable(s.Name) }

// Neighbors maps each direction to the adjacent space name. Directions that
// lead off the board are absent.
func (s Space) Neighbors() map[spatial.Direction]string {
	i, ok := topo.index[s.Name]
	if !ok {
		return nil
	}
	out := make(map[spatial.Direction]string, len(topo.neighbors[i]))
	for d, n := range topo.neighbors[i] {
		out[d] = n
	}
	return out
}

// IsPlayable reports whether name is one of C1-C9.
func IsPlayable(name string) bool {
	i, ok := topo.index[name]
	return ok && i < 9
}
