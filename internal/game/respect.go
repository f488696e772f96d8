package game

import "fmt"

// Respect passes the respect token, e.g. "R:In".
type Respect struct {
	Player string
}

func (e *Respect) Notation() string { return "R:" + e.Player }

func (e *Respect) execute(g *Game) error {
	if _, ok := g.players[e.Player]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, e.Player)
	}
	g.respect = e.Player
	return nil
}
