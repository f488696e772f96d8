package game

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePGN(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.pgn")
	require.NoError(t, err)
	return string(data)
}

func TestFromPGN(t *testing.T) {
	g, err := FromPGN(samplePGN(t), quiet())
	require.NoError(t, err)

	p, ok := g.Player("Indiana Jones")
	require.True(t, ok)
	assert.Equal(t, "In", p.Code())

	te, ok := g.Player("Te")
	require.True(t, ok)
	assert.Equal(t, "Teal", te.Name())

	assert.Equal(t, JoinAfterPlacement, g.Rules().Join.When)
	assert.Equal(t, "C1:InPuNo/C5:SaPuNo/C7:TePuNo", g.BoardState())
	assert.Equal(t, "Sa", g.HoldingRespectToken())
	assert.Equal(t, []string{"In", "Te", "Sa"}, g.PlayerOrder())
	assert.Equal(t, "Kitchen table", g.Metadata()["Site"])
}

func TestParsePGN(t *testing.T) {
	tags, events, err := ParsePGN("[Event \"x\"]\nIn+;Te+\n12. In:C4PuNo ; Te:C7PuNo\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Event": "x"}, tags)
	assert.Equal(t, []string{"In+", "Te+", "In:C4PuNo", "Te:C7PuNo"}, events)
}

func TestFromPGNReportsFailingEvent(t *testing.T) {
	_, err := FromPGN("In+\nIn+\n", quiet())
	assert.ErrorIs(t, err, ErrPlayerCodeAlreadyUsed)
	assert.Contains(t, err.Error(), "event 2")
}

func TestPGNRoundTrip(t *testing.T) {
	g, err := FromPGN(samplePGN(t), quiet())
	require.NoError(t, err)

	out := g.PGN()
	assert.Contains(t, out, "[ColorIn \"Indiana Jones\"]\n")
	assert.Contains(t, out, "Sa+:Sage\n")

	again, err := FromPGN(out, quiet())
	require.NoError(t, err)
	assert.Equal(t, g.BoardState(), again.BoardState())
	assert.Equal(t, g.History().Notation(HistoryOptions{}), again.History().Notation(HistoryOptions{}))
	assert.Equal(t, g.PlayerOrder(), again.PlayerOrder())
}

func TestPGNRoundTripWithPendingChoice(t *testing.T) {
	tests := []struct {
		name    string
		events  []string
		pending string
		choice  string
	}{
		{
			name:    "no choice made yet",
			events:  []string{"In+", "Te+", "In:C6PuNo", "Te:C8ReNe"},
			pending: "Te:C8ReNe(EaNoSoWe)",
			choice:  "Ea",
		},
		{
			name:    "partially chosen",
			events:  []string{"In+", "Te+", "In:C2ReSw", "Te:C8PuSo", "In:C6DeSw", "C4"},
			pending: "In:C6DeSw[C4(EaNoSoWe)",
			choice:  "So",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame()
			play(t, g, tt.events...)
			out := g.PGN()
			assert.Contains(t, out, tt.pending+"\n")

			again, err := FromPGN(out, quiet())
			require.NoError(t, err)
			assert.Equal(t, out, again.PGN())
			assert.Equal(t, g.PlayerOptions(), again.PlayerOptions())
			assert.Equal(t, g.BoardState(), again.BoardState())

			require.NoError(t, g.Apply(tt.choice))
			require.NoError(t, again.Apply(tt.choice))
			assert.Equal(t, g.BoardState(), again.BoardState())
			assert.Equal(t, g.PGN(), again.PGN())
			assert.Empty(t, again.PlayerOptions())
		})
	}
}
