package game

// State is a serializable snapshot of a game.
type State struct {
	ID            string            `json:"id" yaml:"id"`
	Rules         Rules             `json:"rules" yaml:"rules"`
	Metadata      map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	History       []string          `json:"history" yaml:"history"`
	CurrentPlayer string            `json:"currentPlayer" yaml:"current_player"`
	Options       []string          `json:"options,omitempty" yaml:"options,omitempty"`
	Players       []PlayerState     `json:"players" yaml:"players"`
	Board         string            `json:"board" yaml:"board"`
	Cells         []Cell            `json:"cells" yaml:"cells"`
	Respect       string            `json:"respect,omitempty" yaml:"respect,omitempty"`
	Conclusions   int               `json:"conclusions" yaml:"conclusions"`
	Over          bool              `json:"over" yaml:"over"`
	Winner        string            `json:"winner,omitempty" yaml:"winner,omitempty"`
}

type PlayerState struct {
	Code      string   `json:"code" yaml:"code"`
	Name      string   `json:"name" yaml:"name"`
	Remaining []string `json:"remaining" yaml:"remaining"`
}

// Cell is one occupied space.
type Cell struct {
	Space  string `json:"space" yaml:"space"`
	Owner  string `json:"owner" yaml:"owner"`
	Kind   string `json:"kind" yaml:"kind"`
	Facing string `json:"facing" yaml:"facing"`
}

func (g *Game) Export() State {
	s := State{
		ID:            g.ID,
		Rules:         g.rules,
		Metadata:      g.Metadata(),
		History:       g.history.Entries(HistoryOptions{}),
		CurrentPlayer: g.current(),
		Options:       g.PlayerOptions(),
		Board:         g.BoardState(),
		Respect:       g.respect,
		Conclusions:   g.board.ConclusionCount(),
		Over:          g.over,
		Winner:        g.winner,
	}
	for _, p := range g.Players() {
		ps := PlayerState{Code: p.Code(), Name: p.Name(), Remaining: []string{}}
		for _, k := range p.Remaining() {
			ps.Remaining = append(ps.Remaining, k.Code())
		}
		s.Players = append(s.Players, ps)
	}
	for _, sp := range g.Board().Spaces() {
		if t, ok := sp.Tile(); ok {
			s.Cells = append(s.Cells, Cell{Space: sp.Name, Owner: t.Owner, Kind: t.Kind.Code(), Facing: t.Facing.Notation()})
		}
	}
	return s
}
