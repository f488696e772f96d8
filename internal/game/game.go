package game

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"philosophy/internal/activation"
	"philosophy/internal/board"
	"philosophy/internal/log"
	"philosophy/internal/player"
	"philosophy/internal/tile"
)

// Game owns the players, the turn order and the activation context of the
// turn in progress. It is not safe for concurrent use.
type Game struct {
	ID string

	rules    Rules
	players  map[string]*player.Player
	order    []string
	board    board.Board
	ctx      *activation.Context
	history  History
	respect  string
	metadata map[string]string
	started  bool
	over     bool
	winner   string

	pending    *Placement
	handBefore []tile.Kind

	log *log.Logger
}

type Option func(*Game)

func WithRules(r Rules) Option { return func(g *Game) { g.rules = r } }

func WithID(id string) Option { return func(g *Game) { g.ID = id } }

func WithLogger(l *log.Logger) Option { return func(g *Game) { g.log = l } }

// WithMetadata sets record tags such as "ColorIn", used for player names.
func WithMetadata(m map[string]string) Option {
	return func(g *Game) { maps.Copy(g.metadata, m) }
}

func New(opts ...Option) *Game {
	g := &Game{
		ID:       uuid.NewString(),
		rules:    DefaultRules(),
		players:  make(map[string]*player.Player),
		board:    board.New(),
		metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = log.Default()
	}
	g.log = g.log.With("game", g.ID)
	g.refreshContext()
	return g
}

// Apply parses and executes one event notation.
func (g *Game) Apply(notation string) error {
	e, err := ParseEvent(notation)
	if err != nil {
		return err
	}
	return g.Execute(e)
}

// Execute runs e and records it. A failed event leaves the game unchanged.
func (g *Game) Execute(e Event) error {
	if err := e.execute(g); err != nil {
		g.log.Debug("rejected %s: %v", e.Notation(), err)
		return err
	}
	if _, ok := e.(*Choice); !ok {
		g.history.append(e)
	}
	g.log.Debug("executed %s", e.Notation())
	return nil
}

// settle ends the turn once nothing is pending: removed tiles go back to
// their owners, conclusions are checked and the next player is up.
func (g *Game) settle() {
	if !g.ctx.Settled() {
		return
	}
	for _, t := range g.ctx.RemovedTiles() {
		if p, ok := g.players[t.Owner]; ok {
			p.Return(t)
		}
	}
	g.board = g.ctx.Board()
	g.pending = nil
	g.handBefore = nil

	if winner, ok := g.board.Winner(); ok {
		g.over = true
		g.winner = winner
		g.log.Info("%s concluded the game", winner)
	} else if n := g.board.ConclusionCount(); n > 1 {
		g.log.Info("%d simultaneous conclusions, play continues", n)
	}

	if len(g.order) > 0 {
		g.order = append(g.order[1:], g.order[0])
	}
	g.ctx = nil
	g.refreshContext()
	g.log.Debug("turn settled, board %s", g.board)
}

// rollback discards the pending placement and gives the tile back.
func (g *Game) rollback() {
	if g.pending == nil {
		return
	}
	if p, ok := g.players[g.pending.Player]; ok {
		p.Restore(g.handBefore)
	}
	g.history.remove(g.pending)
	g.log.Info("rolled back %s", g.pending.Notation())
	g.pending = nil
	g.handBefore = nil
	g.ctx = nil
}

// refreshContext starts a fresh turn context unless a placement is underway.
func (g *Game) refreshContext() {
	if g.ctx != nil && len(g.ctx.Operations()) > 0 {
		return
	}
	g.ctx = activation.New(g.current(), g.board)
}

func (g *Game) current() string {
	if len(g.order) == 0 {
		return ""
	}
	return g.order[0]
}

// CurrentPlayer is the player whose turn it is.
func (g *Game) CurrentPlayer() (*player.Player, bool) {
	p, ok := g.players[g.current()]
	return p, ok
}

// Player finds a player by code or display name.
func (g *Game) Player(codeOrName string) (*player.Player, bool) {
	if p, ok := g.players[codeOrName]; ok {
		return p, true
	}
	for _, p := range g.players {
		if p.Name() == codeOrName {
			return p, true
		}
	}
	return nil, false
}

func (g *Game) Players() []*player.Player {
	out := make([]*player.Player, 0, len(g.order))
	for _, code := range g.order {
		out = append(out, g.players[code])
	}
	return out
}

// PlayerOrder lists codes with the current player first.
func (g *Game) PlayerOrder() []string { return slices.Clone(g.order) }

func (g *Game) Rules() Rules { return g.rules }

func (g *Game) Context() *activation.Context { return g.ctx }

// Board is the position including any pending placement.
func (g *Game) Board() board.Board { return g.ctx.Board() }

func (g *Game) BoardState() string { return g.ctx.Board().Notation(board.DefaultDelimiter) }

// PlayerOptions lists the choice keys awaiting the current player.
func (g *Game) PlayerOptions() []string { return g.ctx.Options() }

func (g *Game) History() *History { return &g.history }

func (g *Game) Metadata() map[string]string { return maps.Clone(g.metadata) }

func (g *Game) HoldingRespectToken() string { return g.respect }

func (g *Game) Started() bool { return g.started }

func (g *Game) Over() bool { return g.over }

func (g *Game) Concluded() bool { return g.board.Concluded() }

func (g *Game) NearingConclusion() bool { return g.board.NearingConclusion() }

func (g *Game) Conclusions() map[board.Conclusion]string { return g.board.Conclusions() }

// Winner is the player holding the single conclusion, if any.
func (g *Game) Winner() (*player.Player, bool) {
	if g.winner == "" {
		return nil, false
	}
	if p, ok := g.players[g.winner]; ok {
		return p, true
	}
	return nil, false
}

func (g *Game) String() string {
	return fmt.Sprintf("game %s: %s to move, board %s", g.ID, g.current(), g.BoardState())
}
