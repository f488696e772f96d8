package game

import (
	"fmt"

	"philosophy/internal/config"
)

// JoinWhen says at what points new players may join.
type JoinWhen string

const (
	JoinBeforeAnyPlacement JoinWhen = "before_any_placement"
	JoinAfterPlacement     JoinWhen = "after_placement"
)

// JoinWhere says where a late joiner goes in the turn order.
type JoinWhere string

const (
	JoinImmediatelyNext JoinWhere = "immediately_next"
	JoinAfterFullTurn   JoinWhere = "after_a_full_turn"
)

// LeaveWhen says at what points a player may leave.
type LeaveWhen string

const (
	LeaveBeforeAnyPlacement LeaveWhen = "before_any_placement"
	LeaveNever              LeaveWhen = "never"
	LeaveAnytime            LeaveWhen = "anytime"
)

// LeaveWhat says what happens when a player leaves a started game.
type LeaveWhat string

const (
	LeaveEndsGame          LeaveWhat = "ends_game"
	LeaveRollbackPlacement LeaveWhat = "rollback_placement"
	LeaveRemoveTheirTiles  LeaveWhat = "remove_their_tiles"
)

type JoinRule struct {
	When  JoinWhen  `json:"when" yaml:"when"`
	Where JoinWhere `json:"where" yaml:"where"`
}

type LeaveRule struct {
	When LeaveWhen `json:"when" yaml:"when"`
	What LeaveWhat `json:"what" yaml:"what"`
}

type Rules struct {
	Join  JoinRule  `json:"join" yaml:"join"`
	Leave LeaveRule `json:"leave" yaml:"leave"`
}

func DefaultRules() Rules {
	return Rules{
		Join:  JoinRule{When: JoinBeforeAnyPlacement, Where: JoinImmediatelyNext},
		Leave: LeaveRule{When: LeaveBeforeAnyPlacement, What: LeaveEndsGame},
	}
}

// RulesFromConfig converts validated configuration into rules.
func RulesFromConfig(c config.Rules) (Rules, error) {
	r := DefaultRules()
	for _, change := range []RuleChange{
		{Rule: "join", Variable: "permitted", Value: c.JoinWhen},
		{Rule: "join", Variable: "where", Value: c.JoinWhere},
		{Rule: "leave", Variable: "permitted", Value: c.LeaveWhen},
		{Rule: "leave", Variable: "what", Value: c.LeaveWhat},
	} {
		if err := r.apply(change); err != nil {
			return Rules{}, err
		}
	}
	return r, nil
}

func (r *Rules) apply(c RuleChange) error {
	switch c.Rule + ":" + c.Variable {
	case "join:permitted":
		switch c.Value {
		case string(JoinBeforeAnyPlacement):
			r.Join.When = JoinBeforeAnyPlacement
		case string(JoinAfterPlacement), "between_turns":
			r.Join.When = JoinAfterPlacement
		default:
			return fmt.Errorf("%w: join permitted %q", ErrUnknownRule, c.Value)
		}
	case "join:where":
		switch JoinWhere(c.Value) {
		case JoinImmediatelyNext, JoinAfterFullTurn:
			r.Join.Where = JoinWhere(c.Value)
		default:
			return fmt.Errorf("%w: join where %q", ErrUnknownRule, c.Value)
		}
	case "leave:permitted":
		switch LeaveWhen(c.Value) {
		case LeaveBeforeAnyPlacement, LeaveNever, LeaveAnytime:
			r.Leave.When = LeaveWhen(c.Value)
		default:
			return fmt.Errorf("%w: leave permitted %q", ErrUnknownRule, c.Value)
		}
	case "leave:what":
		switch LeaveWhat(c.Value) {
		case LeaveEndsGame, LeaveRollbackPlacement, LeaveRemoveTheirTiles:
			r.Leave.What = LeaveWhat(c.Value)
		default:
			return fmt.Errorf("%w: leave what %q", ErrUnknownRule, c.Value)
		}
	default:
		return fmt.Errorf("%w: %s %s", ErrUnknownRule, c.Rule, c.Variable)
	}
	return nil
}

func (r Rules) canJoin(started bool) bool {
	return !started || r.Join.When == JoinAfterPlacement
}

func (r Rules) canLeave(started bool) bool {
	switch r.Leave.When {
	case LeaveNever:
		return false
	case LeaveBeforeAnyPlacement:
		return !started
	}
	return true
}
