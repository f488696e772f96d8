package game

import (
	"fmt"
	"sort"
	"strings"

	"philosophy/internal/activation"
	"philosophy/internal/spatial"
	"philosophy/internal/tile"
)

// Placement puts a tile on the board, e.g. "In:C6DeSw[C4So]". Parameters are
// the choices made for it; Options are the keys still pending; Conclusions
// counts completed triples once it resolved.
type Placement struct {
	Player      string
	Location    string
	Tile        string
	Direction   string
	Parameters  []string
	Options     []string
	Conclusions int
}

func parsePlacement(s string) *Placement {
	m := placementPattern.FindStringSubmatch(s)
	group := func(name string) string { return m[placementPattern.SubexpIndex(name)] }
	return &Placement{
		Player:      group("player"),
		Location:    group("location"),
		Tile:        group("tile"),
		Direction:   group("direction"),
		Parameters:  splitPairs(group("parameters")),
		// Recorded options are informational; execute derives them again.
		Options:     splitPairs(group("options")),
		Conclusions: len(group("conclusions")),
	}
}

func (e *Placement) Notation() string {
	var b strings.Builder
	b.WriteString(e.Player + ":" + e.Location + e.Tile + e.Direction)
	if len(e.Parameters) > 0 {
		b.WriteString("[" + strings.Join(e.Parameters, ""))
		if len(e.Options) == 0 {
			b.WriteString("]")
		}
	}
	if len(e.Options) > 0 {
		options := append([]string(nil), e.Options...)
		sort.Strings(options)
		b.WriteString("(" + strings.Join(options, "") + ")")
	}
	b.WriteString(strings.Repeat(".", e.Conclusions))
	return b.String()
}

func (e *Placement) execute(g *Game) error {
	if len(g.players) < 2 {
		return ErrInsufficientPlayers
	}
	if g.over {
		return ErrGameOver
	}
	if !g.ctx.Settled() {
		return fmt.Errorf("%w: %v", ErrChoicePending, g.ctx.Options())
	}
	if g.current() != e.Player {
		return fmt.Errorf("%w: %s played, %s to move", ErrIncorrectPlayer, e.Player, g.current())
	}
	kind, err := tile.ParseKind(e.Tile)
	if err != nil {
		return fmt.Errorf("%w: %w", activation.ErrInvalidTileType, err)
	}
	direction, err := spatial.ParseDirection(e.Direction)
	if err != nil {
		return fmt.Errorf("%w: %w", activation.ErrCannotOrientInTargetDirection, err)
	}

	p := g.players[e.Player]
	before := p.Remaining()
	ctx, err := g.ctx.Place(p, kind, e.Location, direction)
	if err != nil {
		return err
	}
	if ctx, err = ctx.Resolve(); err != nil {
		p.Restore(before)
		return err
	}
	for _, key := range e.Parameters {
		if ctx, err = ctx.Choose(key); err != nil {
			p.Restore(before)
			return err
		}
	}

	g.started = true
	g.ctx = ctx
	g.pending = e
	g.handBefore = before
	e.update(ctx)
	g.settle()
	return nil
}

func (e *Placement) update(ctx *activation.Context) {
	e.Options = ctx.Options()
	if ctx.Settled() {
		e.Conclusions = ctx.Board().ConclusionCount()
	} else {
		e.Conclusions = 0
	}
}
