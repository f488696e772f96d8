package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"philosophy/internal/spatial"
	"philosophy/internal/tile"
)

var ErrMalformedNotation = errors.New("malformed board notation")

// DefaultDelimiter separates cells in board notation.
const DefaultDelimiter = "/"

// Notation lists occupied cells in canonical order, e.g. "C1:InPuNo/C7:TePuNo".
func (b Board) Notation(delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	var parts []string
	for i, t := range b.cells {
		if t != nil {
			parts = append(parts, topo.names[i]+":"+t.Notation())
		}
	}
	return strings.Join(parts, delimiter)
}

func (b Board) String() string { return b.Notation(DefaultDelimiter) }

// Parse builds a board from Notation output. Entries may be separated by
// slashes or whitespace. An empty string is an empty board.
func Parse(notation string) (Board, error) {
	b := New()
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return b, nil
	}
	separator := func(r rune) bool { return r == '/' || unicode.IsSpace(r) }
	for _, part := range strings.FieldsFunc(notation, separator) {
		name, code, ok := strings.Cut(part, ":")
		if !ok || len(code) != 6 {
			return Board{}, fmt.Errorf("%w: %q", ErrMalformedNotation, part)
		}
		if !Exists(name) {
			return Board{}, fmt.Errorf("%w: unknown space %q", ErrMalformedNotation, name)
		}
		kind, err := tile.ParseKind(code[2:4])
		if err != nil {
			return Board{}, fmt.Errorf("%w: %w", ErrMalformedNotation, err)
		}
		facing, err := spatial.ParseDirection(code[4:6])
		if err != nil {
			return Board{}, fmt.Errorf("%w: %w", ErrMalformedNotation, err)
		}
		t := tile.New(code[0:2], kind, facing)
		b = b.With(name, &t)
	}
	return b, nil
}
