package game

import (
	"fmt"

	"philosophy/internal/player"
)

// PlayerChange is a player joining ("In+", "In+:Indiana Jones") or leaving ("In-").
type PlayerChange struct {
	Code   string
	Joined bool
	Name   string
}

func parsePlayerChange(s string) *PlayerChange {
	m := playerChangePattern.FindStringSubmatch(s)
	return &PlayerChange{
		Code:   m[playerChangePattern.SubexpIndex("code")],
		Joined: m[playerChangePattern.SubexpIndex("type")] == "+",
		Name:   m[playerChangePattern.SubexpIndex("name")],
	}
}

func (e *PlayerChange) Notation() string {
	if e.Joined {
		return e.Code + "+"
	}
	return e.Code + "-"
}

func (e *PlayerChange) execute(g *Game) error {
	if e.Joined {
		return g.join(e)
	}
	return g.leave(e.Code)
}

func (g *Game) join(e *PlayerChange) error {
	if _, ok := g.players[e.Code]; ok {
		return fmt.Errorf("%w: %s", ErrPlayerCodeAlreadyUsed, e.Code)
	}
	if !g.rules.canJoin(g.started) {
		return fmt.Errorf("%w: joining after the first placement", ErrDisallowedByRule)
	}
	if e.Name == "" {
		e.Name = g.metadata["Color"+e.Code]
	}
	color, err := player.NewColor(e.Code, e.Name)
	if err != nil {
		return err
	}

	g.players[e.Code] = player.New(color)
	switch {
	case !g.started || g.rules.Join.Where == JoinAfterFullTurn:
		g.order = append(g.order, e.Code)
	case g.ctx.Settled() && len(g.ctx.Operations()) == 0:
		g.order = append([]string{e.Code}, g.order...)
	default:
		// The current player is mid-placement; the newcomer goes right after.
		g.order = append(g.order[:1], append([]string{e.Code}, g.order[1:]...)...)
	}
	g.refreshContext()
	g.log.Info("%s joined as %s", color.Name, color.Code)
	return nil
}

func (g *Game) leave(code string) error {
	p, ok := g.players[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, code)
	}
	if !g.rules.canLeave(g.started) {
		return fmt.Errorf("%w: leaving now", ErrDisallowedByRule)
	}

	if g.started {
		switch g.rules.Leave.What {
		case LeaveEndsGame:
			g.over = true
			g.log.Info("%s left, game ends", p.Name())
		case LeaveRollbackPlacement:
			if g.current() == code && !g.ctx.Settled() {
				g.rollback()
			}
		case LeaveRemoveTheirTiles:
			// A pending placement was built on the board being changed.
			if !g.ctx.Settled() {
				g.rollback()
			}
			g.board = g.board.WithoutOwner(code)
		}
	}

	delete(g.players, code)
	for i, c := range g.order {
		if c == code {
			g.order = append(g.order[:i:i], g.order[i+1:]...)
			break
		}
	}
	if g.ctx != nil && g.ctx.Player() == code {
		g.ctx = nil
	}
	g.refreshContext()
	g.log.Info("%s left", code)
	return nil
}
