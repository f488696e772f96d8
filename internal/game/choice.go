package game

import (
	"fmt"

	"philosophy/internal/activation"
)

// Choice answers a pending option ("C4", "So", "OO"). It is folded into the
// parameters of the placement it belongs to instead of being recorded alone.
type Choice struct {
	Key string
}

func (e *Choice) Notation() string { return e.Key }

func (e *Choice) execute(g *Game) error {
	if g.pending == nil || g.ctx.Settled() {
		return fmt.Errorf("%w: %q, nothing pending", activation.ErrInvalidChoice, e.Key)
	}
	ctx, err := g.ctx.Choose(e.Key)
	if err != nil {
		return err
	}
	g.pending.Parameters = append(g.pending.Parameters, e.Key)
	g.ctx = ctx
	g.pending.update(ctx)
	g.settle()
	return nil
}
