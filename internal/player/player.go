package player

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"philosophy/internal/spatial"
	"philosophy/internal/tile"
)

var (
	ErrInvalidCode     = errors.New("invalid player code")
	ErrUnavailableTile = errors.New("tile not in hand")
)

var codePattern = regexp.MustCompile(`^[A-Z][a-z]$`)

// Color is a player's seat: a two-letter code used in notation and a display name.
type Color struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Known seats. Any other two-letter code is accepted too.
var (
	Teal   = Color{Code: "Te", Name: "teal"}
	Indigo = Color{Code: "In", Name: "indigo"}
	Amber  = Color{Code: "Am", Name: "amber"}
	Sage   = Color{Code: "Sa", Name: "sage"}
)

var known = []Color{Teal, Indigo, Amber, Sage}

// NewColor validates code and fills in a name. An empty name falls back to
// the known colour name, then to the code.
func NewColor(code, name string) (Color, error) {
	if !codePattern.MatchString(code) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	if name == "" {
		name = code
		for _, c := range known {
			if c.Code == code {
				name = c.Name
			}
		}
	}
	return Color{Code: code, Name: name}, nil
}

// Player owns an inventory with at most one tile of each kind.
type Player struct {
	color Color
	hand  map[tile.Kind]bool
}

// New gives the player one tile of every kind.
func New(c Color) *Player {
	p := &Player{color: c, hand: make(map[tile.Kind]bool)}
	for _, k := range tile.Kinds() {
		p.hand[k] = true
	}
	return p
}

func (p *Player) Color() Color { return p.color }
func (p *Player) Code() string { return p.color.Code }
func (p *Player) Name() string { return p.color.Name }

func (p *Player) Has(kind tile.Kind) bool { return p.hand[kind] }

// Take removes kind from the hand and returns it as a tile facing north.
func (p *Player) Take(kind tile.Kind) (tile.Tile, error) {
	if !p.hand[kind] {
		return tile.Tile{}, fmt.Errorf("%w: %s%s", ErrUnavailableTile, p.Code(), kind.Code())
	}
	delete(p.hand, kind)
	return tile.New(p.Code(), kind, spatial.North), nil
}

// Return puts a tile that left the board back in the hand.
func (p *Player) Return(t tile.Tile) {
	if t.Owner != p.Code() || !t.Kind.Valid() {
		return
	}
	p.hand[t.Kind] = true
}

// Remaining lists the kinds still in hand, in registry order.
func (p *Player) Remaining() []tile.Kind {
	var out []tile.Kind
	for _, k := range tile.Kinds() {
		if p.hand[k] {
			out = append(out, k)
		}
	}
	return out
}

// Restore replaces the hand with kinds, used to roll back a placement.
func (p *Player) Restore(kinds []tile.Kind) {
	p.hand = make(map[tile.Kind]bool, len(kinds))
	for _, k := range kinds {
		p.hand[k] = true
	}
}

func (p *Player) String() string {
	if p.color.Name == "" {
		return p.color.Code
	}
	r, size := utf8.DecodeRuneInString(p.color.Name)
	return string(unicode.ToUpper(r)) + p.color.Name[size:]
}
