package game

import (
	"fmt"
	"regexp"
	"strings"
)

// Event is one entry of a game record.
type Event interface {
	Notation() string
	execute(g *Game) error
}

var (
	playerChangePattern = regexp.MustCompile(`^(?P<code>[A-Z][a-z])(?P<type>[+-])(?::(?P<name>.+))?$`)
	placementPattern    = regexp.MustCompile(`^(?P<player>[A-Z][a-z]):?(?P<location>[CNESW][we1-9])(?P<tile>[A-Z][a-z])(?P<direction>No|We|Ea|So|[NS][we])\[?(?P<parameters>(?:` + choiceToken + `)*)\]?(?:\((?P<options>(?:` + choiceToken + `)*)\))?(?P<conclusions>\.*)$`)
	choicePattern       = regexp.MustCompile(`^(?:` + choiceToken + `)$`)
	respectPattern      = regexp.MustCompile(`^R:(?P<player>[A-Z][a-z])$`)
	ruleChangePattern   = regexp.MustCompile(`^rule:(?P<rule>join|leave):(?P<variable>permitted|where|what):(?P<value>\w+)$`)
)

// choiceToken matches a cell name, a direction code or the off-board key.
const choiceToken = `[CNESW][1-9]|[NS][EWew]|No|So|Ea|We|OO`

// ParseEvent reads one event from its notation.
func ParseEvent(notation string) (Event, error) {
	s := strings.TrimSpace(notation)
	switch {
	case playerChangePattern.MatchString(s):
		return parsePlayerChange(s), nil
	case placementPattern.MatchString(s):
		return parsePlacement(s), nil
	case choicePattern.MatchString(s):
		return &Choice{Key: s}, nil
	case respectPattern.MatchString(s):
		m := respectPattern.FindStringSubmatch(s)
		return &Respect{Player: m[respectPattern.SubexpIndex("player")]}, nil
	case ruleChangePattern.MatchString(s):
		m := ruleChangePattern.FindStringSubmatch(s)
		return &RuleChange{
			Rule:     m[ruleChangePattern.SubexpIndex("rule")],
			Variable: m[ruleChangePattern.SubexpIndex("variable")],
			Value:    m[ruleChangePattern.SubexpIndex("value")],
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, notation)
}

// splitPairs cuts a run of two-character tokens.
func splitPairs(s string) []string {
	var out []string
	for i := 0; i+2 <= len(s); i += 2 {
		out = append(out, s[i:i+2])
	}
	return out
}
