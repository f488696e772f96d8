package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philosophy/internal/config"
)

func rulesWith(mutate func(*Rules)) Option {
	r := DefaultRules()
	mutate(&r)
	return WithRules(r)
}

func TestJoinRule(t *testing.T) {
	t.Run("before any placement allows joins at start", func(t *testing.T) {
		g := newGame()
		play(t, g, "In+", "Sa+", "Am+", "Te+")
		assert.Equal(t, []string{"In", "Sa", "Am", "Te"}, g.PlayerOrder())
	})

	t.Run("before any placement rejects joins after start", func(t *testing.T) {
		g := newGame()
		play(t, g, "In+", "Te+", "In:C5PuNo")
		assert.ErrorIs(t, g.Apply("Sa+"), ErrDisallowedByRule)
		assert.Equal(t, []string{"Te", "In"}, g.PlayerOrder())
	})

	t.Run("immediately next keeps order before start", func(t *testing.T) {
		g := newGame(rulesWith(func(r *Rules) { r.Join.When = JoinAfterPlacement }))
		play(t, g, "In+", "Te+")
		assert.Equal(t, "In", g.PlayerOrder()[0])
		assert.Equal(t, []string{"In", "Te"}, g.PlayerOrder())
	})

	t.Run("immediately next makes the joiner current", func(t *testing.T) {
		g := newGame(rulesWith(func(r *Rules) { r.Join.When = JoinAfterPlacement }))
		play(t, g, "In+", "Te+", "In:C5PuNo", "Sa+")
		assert.Equal(t, []string{"Sa", "Te", "In"}, g.PlayerOrder())
		assert.Equal(t, "Sa", g.Context().Player())
	})

	t.Run("after a full turn appends", func(t *testing.T) {
		g := newGame(rulesWith(func(r *Rules) {
			r.Join.When = JoinAfterPlacement
			r.Join.Where = JoinAfterFullTurn
		}))
		play(t, g, "In+", "Te+", "In:C5PuNo", "Sa+")
		assert.Equal(t, []string{"Te", "In", "Sa"}, g.PlayerOrder())
	})
}

func TestLeaveRule(t *testing.T) {
	four := []string{"In+", "Sa+", "Am+", "Te+"}

	t.Run("never", func(t *testing.T) {
		g := newGame(rulesWith(func(r *Rules) { r.Leave.When = LeaveNever }))
		play(t, g, four...)
		assert.ErrorIs(t, g.Apply("In-"), ErrDisallowedByRule)
	})

	t.Run("before any placement", func(t *testing.T) {
		g := newGame()
		play(t, g, four...)
		assert.False(t, g.Started())
		require.NoError(t, g.Apply("In-"))
		assert.Equal(t, []string{"Sa", "Am", "Te"}, g.PlayerOrder())
		assert.Equal(t, "Sa", g.Context().Player())

		play(t, g, "Sa:C5PuNo")
		assert.ErrorIs(t, g.Apply("Am-"), ErrDisallowedByRule)
	})

	t.Run("unknown player", func(t *testing.T) {
		g := newGame()
		assert.ErrorIs(t, g.Apply("In-"), ErrUnknownPlayer)
	})

	t.Run("ends game", func(t *testing.T) {
		g := newGame(rulesWith(func(r *Rules) { r.Leave.When = LeaveAnytime }))
		play(t, g, four...)
		play(t, g, "In:C5PuNo", "In-")
		assert.True(t, g.Over())
		assert.ErrorIs(t, g.Apply("Sa:C4PuNo"), ErrGameOver)
	})

	t.Run("rollback placement", func(t *testing.T) {
		g := newGame(rulesWith(func(r *Rules) {
			r.Leave.When = LeaveAnytime
			r.Leave.What = LeaveRollbackPlacement
		}))
		play(t, g, "In+", "Te+", "Sa+", "In:C3PuNo", "Te:C5DeNe")
		require.Equal(t, []string{"E3", "N5"}, g.PlayerOptions())

		play(t, g, "Te-")
		assert.Equal(t, "C3:InPuNo", g.BoardState())
		assert.Empty(t, g.PlayerOptions())
		assert.Equal(t, []string{"Sa", "In"}, g.PlayerOrder())
		assert.Equal(t, "Sa", g.Context().Player())
		assert.Equal(t, "In+;Te+;Sa+;In:C3PuNo;Te-", g.History().Notation(HistoryOptions{Delimiter: ";"}))
		assert.False(t, g.Over())
	})

	t.Run("remove their tiles", func(t *testing.T) {
		g := newGame(rulesWith(func(r *Rules) {
			r.Leave.When = LeaveAnytime
			r.Leave.What = LeaveRemoveTheirTiles
		}))
		play(t, g, "In+", "Am+", "In:C5PuNo", "Am:C4PuNo", "In:C6LsNo", "In-")
		assert.Equal(t, "C4:AmPuNo", g.BoardState())
		assert.Equal(t, []string{"Am"}, g.PlayerOrder())
	})
}

func TestRuleChangeEvent(t *testing.T) {
	g := newGame()
	play(t, g, "In+", "Te+", "In:C5PuNo", "rule:join:permitted:after_placement", "Sa+")
	assert.Equal(t, []string{"Sa", "Te", "In"}, g.PlayerOrder())

	play(t, g, "rule:join:where:after_a_full_turn", "rule:leave:what:remove_their_tiles")
	assert.Equal(t, JoinAfterFullTurn, g.Rules().Join.Where)
	assert.Equal(t, LeaveRemoveTheirTiles, g.Rules().Leave.What)

	assert.ErrorIs(t, g.Apply("rule:join:where:sideways"), ErrUnknownRule)
	assert.ErrorIs(t, g.Apply("rule:leave:where:anytime"), ErrUnknownRule)
}

func TestRulesFromConfig(t *testing.T) {
	r, err := RulesFromConfig(config.Default().Rules)
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), r)

	r, err = RulesFromConfig(config.Rules{
		JoinWhen:  "between_turns",
		JoinWhere: "after_a_full_turn",
		LeaveWhen: "anytime",
		LeaveWhat: "rollback_placement",
	})
	require.NoError(t, err)
	assert.Equal(t, JoinAfterPlacement, r.Join.When)
	assert.Equal(t, LeaveRollbackPlacement, r.Leave.What)

	_, err = RulesFromConfig(config.Rules{JoinWhen: "whenever"})
	assert.ErrorIs(t, err, ErrUnknownRule)
}
