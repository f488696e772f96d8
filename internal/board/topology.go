package board

import (
	"fmt"

	"philosophy/internal/spatial"
)

// The board is a diamond: a 3x3 centre (C1-C9) with an arm of 6 cells on each
// side and a single corner cell between neighbouring arms.
//
//	.. .. N1 N2 N3 .. ..
//	.. NW N4 N5 N6 NE ..
//	W1 W2 C1 C2 C3 E1 E2
//	W3 W4 C4 C5 C6 E3 E4
//	W5 W6 C7 C8 C9 E5 E6
//	.. SW S1 S2 S3 SE ..
//	.. .. S4 S5 S6 .. ..
type cellRange struct {
	prefix string
	first  int
	row    int
	cols   []int
}

var layout = []cellRange{
	{"N", 1, 0, []int{2, 3, 4}},
	{"N", 4, 1, []int{2, 3, 4}},
	{"E", 1, 2, []int{5, 6}},
	{"E", 3, 3, []int{5, 6}},
	{"E", 5, 4, []int{5, 6}},
	{"C", 1, 2, []int{2, 3, 4}},
	{"C", 4, 3, []int{2, 3, 4}},
	{"C", 7, 4, []int{2, 3, 4}},
	{"S", 1, 5, []int{2, 3, 4}},
	{"S", 4, 6, []int{2, 3, 4}},
	{"W", 1, 2, []int{0, 1}},
	{"W", 3, 3, []int{0, 1}},
	{"W", 5, 4, []int{0, 1}},
}

var corners = map[string]spatial.Coordinate{
	"NW": {Row: 1, Col: 1},
	"NE": {Row: 1, Col: 5},
	"SE": {Row: 5, Col: 5},
	"SW": {Row: 5, Col: 1},
}

// SpaceCount is the number of cells on the board.
const SpaceCount = 37

type topology struct {
	names       []string
	index       map[string]int
	coordinates []spatial.Coordinate
	byCoord     map[spatial.Coordinate]int
	neighbors   []map[spatial.Direction]string
}

var topo = buildTopology()

func buildTopology() *topology {
	coords := make(map[string]spatial.Coordinate, SpaceCount)
	for _, r := range layout {
		for i, col := range r.cols {
			coords[fmt.Sprintf("%s%d", r.prefix, r.first+i)] = spatial.Coordinate{Row: r.row, Col: col}
		}
	}
	for name, c := range corners {
		coords[name] = c
	}

	t := &topology{
		names:   canonicalNames(),
		index:   make(map[string]int, SpaceCount),
		byCoord: make(map[spatial.Coordinate]int, SpaceCount),
	}
	for i, name := range t.names {
		c := coords[name]
		t.index[name] = i
		t.coordinates = append(t.coordinates, c)
		t.byCoord[c] = i
	}
	for _, c := range t.coordinates {
		n := make(map[spatial.Direction]string, 8)
		for _, nb := range c.EachDirection() {
			if j, ok := t.byCoord[nb.Coordinate]; ok {
				n[nb.Direction] = t.names[j]
			}
		}
		t.neighbors = append(t.neighbors, n)
	}
	return t
}

// canonicalNames is the fixed traversal order used for notation.
func canonicalNames() []string {
	var names []string
	seq := func(prefix string) {
		for i := 1; i <= 6; i++ {
			names = append(names, fmt.Sprintf("%s%d", prefix, i))
		}
	}
	for i := 1; i <= 9; i++ {
		names = append(names, fmt.Sprintf("C%d", i))
	}
	names = append(names, "NW")
	seq("N")
	names = append(names, "NE")
	seq("E")
	names = append(names, "SE")
	seq("S")
	names = append(names, "SW")
	seq("W")
	return names
}

// Names returns every space name in canonical order.
func Names() []string {
	out := make([]string, len(topo.names))
	copy(out, topo.names)
	return out
}

// Locate returns the coordinate of a named space.
func Locate(name string) (spatial.Coordinate, bool) {
	i, ok := topo.index[name]
	if !ok {
		return spatial.Coordinate{}, false
	}
	return topo.coordinates[i], true
}

// NameAt returns the name of the space at c, or false when c is off the board.
func NameAt(c spatial.Coordinate) (string, bool) {
	i, ok := topo.byCoord[c]
	if !ok {
		return "", false
	}
	return topo.names[i], true
}

// Exists reports whether name is a space on the board.
func Exists(name string) bool {
	_, ok := topo.index[name]
	return ok
}
