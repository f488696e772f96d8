package board

import "sort"

// Conclusion is three collinear, adjacent cells in canonical order.
type Conclusion [3]string

func (c Conclusion) String() string { return c[0] + "-" + c[1] + "-" + c[2] }

var conclusions = buildConclusions()

func buildConclusions() [][3]int {
	seen := make(map[[3]int]bool)
	var out [][3]int
	for a := range topo.names {
		for d, bName := range topo.neighbors[a] {
			b := topo.index[bName]
			cName, ok := topo.neighbors[b][d]
			if !ok {
				continue
			}
			triple := []int{a, b, topo.index[cName]}
			sort.Ints(triple)
			key := [3]int{triple[0], triple[1], triple[2]}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

// AllConclusions lists every collinear triple on the board.
func AllConclusions() []Conclusion {
	out := make([]Conclusion, len(conclusions))
	for i, c := range conclusions {
		out[i] = toConclusion(c)
	}
	return out
}

func toConclusion(c [3]int) Conclusion {
	return Conclusion{topo.names[c[0]], topo.names[c[1]], topo.names[c[2]]}
}

// Conclusions maps every completed triple to the player who holds it.
func (b Board) Conclusions() map[Conclusion]string {
	out := make(map[Conclusion]string)
	for _, c := range conclusions {
		x, y, z := b.cells[c[0]], b.cells[c[1]], b.cells[c[2]]
		if x == nil || y == nil || z == nil {
			continue
		}
		if x.Owner == y.Owner && y.Owner == z.Owner {
			out[toConclusion(c)] = x.Owner
		}
	}
	return out
}

func (b Board) ConclusionCount() int { return len(b.Conclusions()) }

// Concluded is true when exactly one triple is complete. Simultaneous
// conclusions do not end the game.
func (b Board) Concluded() bool { return b.ConclusionCount() == 1 }

// Winner returns the owner of the single completed triple.
func (b Board) Winner() (string, bool) {
	cs := b.Conclusions()
	if len(cs) != 1 {
		return "", false
	}
	for _, owner := range cs {
		return owner, true
	}
	return "", false
}

// NearingConclusion is true when some triple has two cells held by one
// player and the third cell empty.
func (b Board) NearingConclusion() bool {
	for _, c := range conclusions {
		var owners []string
		empty := 0
		for _, i := range c {
			if t := b.cells[i]; t != nil {
				owners = append(owners, t.Owner)
			} else {
				empty++
			}
		}
		if empty == 1 && owners[0] == owners[1] {
			return true
		}
	}
	return false
}
