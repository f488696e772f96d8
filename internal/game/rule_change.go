package game

import "strings"

// RuleChange updates a rule mid-record, e.g. "rule:join:permitted:after_placement".
type RuleChange struct {
	Rule     string
	Variable string
	Value    string
}

func (e *RuleChange) Notation() string {
	return strings.Join([]string{"rule", e.Rule, e.Variable, e.Value}, ":")
}

func (e *RuleChange) execute(g *Game) error { return g.rules.apply(*e) }
