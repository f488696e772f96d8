package game

import (
	"bufio"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	tagPattern     = regexp.MustCompile(`^\[(?P<key>\w+)\s+"(?P<value>[^"]*)"\]$`)
	ordinalPattern = regexp.MustCompile(`^\d+\.\s*`)
)

// FromPGN builds a game from a record: "[Key "Value"]" tag lines followed by
// events separated by newlines or semicolons. Leading move numbers ("12. ")
// are ignored.
func FromPGN(text string, opts ...Option) (*Game, error) {
	tags, events, err := ParsePGN(text)
	if err != nil {
		return nil, err
	}
	g := New(append(opts, WithMetadata(tags))...)
	for i, notation := range events {
		if err := g.Apply(notation); err != nil {
			return nil, fmt.Errorf("event %d %q: %w", i+1, notation, err)
		}
	}
	return g, nil
}

// ParsePGN splits a record into its tags and event notations.
func ParsePGN(text string) (map[string]string, []string, error) {
	tags := make(map[string]string)
	var events []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if m := tagPattern.FindStringSubmatch(line); m != nil {
			tags[m[tagPattern.SubexpIndex("key")]] = m[tagPattern.SubexpIndex("value")]
			continue
		}
		for _, part := range strings.Split(line, ";") {
			part = strings.TrimSpace(ordinalPattern.ReplaceAllString(strings.TrimSpace(part), ""))
			if part != "" {
				events = append(events, part)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read pgn: %w", err)
	}
	return tags, events, nil
}

// PGN renders the metadata tags in key order followed by the numbered history.
func (g *Game) PGN() string {
	var b strings.Builder
	keys := make([]string, 0, len(g.metadata))
	for k := range g.metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "[%s %q]\n", k, g.metadata[k])
	}
	if len(keys) > 0 {
		b.WriteString("\n")
	}
	for _, p := range g.history.events {
		if pc, ok := p.(*PlayerChange); ok && pc.Joined && pc.Name != "" && g.metadata["Color"+pc.Code] == "" {
			fmt.Fprintf(&b, "%s:%s\n", pc.Notation(), pc.Name)
			continue
		}
		b.WriteString(p.Notation() + "\n")
	}
	return b.String()
}
