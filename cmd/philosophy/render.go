package main

import (
	"fmt"
	"io"
	"strings"

	"philosophy/internal/board"
	"philosophy/internal/game"
	"philosophy/internal/spatial"
)

const gridSize = 7

// printBoard draws the diamond with one 6-wide column per cell. Empty cells
// show their space name, occupied cells the tile notation.
func printBoard(w io.Writer, b board.Board) {
	for row := 0; row < gridSize; row++ {
		cells := make([]string, 0, gridSize)
		for col := 0; col < gridSize; col++ {
			sp, ok := b.SpaceAt(spatial.Coordinate{Row: row, Col: col})
			switch {
			case !ok:
				cells = append(cells, "      ")
			case sp.Occupied():
				t, _ := sp.Tile()
				cells = append(cells, t.Notation())
			default:
				cells = append(cells, fmt.Sprintf(" %-4s ", sp.Name))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}
}

func printStatus(w io.Writer, g *game.Game) {
	printBoard(w, g.Board())
	if g.Over() {
		if p, ok := g.Winner(); ok {
			fmt.Fprintf(w, "\n%s concluded the game.\n", p)
		} else {
			fmt.Fprintln(w, "\nThe game is over.")
		}
		return
	}
	if p, ok := g.CurrentPlayer(); ok {
		fmt.Fprintf(w, "\nTurn: %s (%s)\n", p, p.Code())
		codes := make([]string, 0)
		for _, k := range p.Remaining() {
			codes = append(codes, k.Code())
		}
		fmt.Fprintf(w, "Hand: %s\n", strings.Join(codes, " "))
	}
	if opts := g.PlayerOptions(); len(opts) > 0 {
		fmt.Fprintf(w, "Choose: %s\n", strings.Join(opts, " "))
	}
	if g.NearingConclusion() {
		fmt.Fprintln(w, "A conclusion is one tile away.")
	}
}
