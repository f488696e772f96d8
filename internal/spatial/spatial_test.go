package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionAlgebra(t *testing.T) {
	for _, d := range Directions() {
		assert.Equal(t, d.Backward(), d.Right().Right(), "right twice from %s", d)
		assert.Equal(t, d.Backward(), d.Left().Left(), "left twice from %s", d)
		assert.Equal(t, d, d.Forward())
		assert.Equal(t, d, d.Backward().Backward())
		assert.Equal(t, d, d.PullLeft().Turn(TurnPullRight))
		assert.Equal(t, d.PullLeft(), d.PullRight().Right())
	}
}

func TestDirectionTurns(t *testing.T) {
	tests := []struct {
		name string
		got  Direction
		want Direction
	}{
		{"north right", North.Right(), East},
		{"north left", North.Left(), West},
		{"north backward", North.Backward(), South},
		{"north pull right", North.PullRight(), SouthEast},
		{"north pull left", North.PullLeft(), SouthWest},
		{"ne left", NorthEast.Left(), NorthWest},
		{"ne right", NorthEast.Right(), SouthEast},
		{"west right wraps", West.Right(), North},
		{"sw pull left", SouthWest.PullLeft(), East},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions() {
		got, err := ParseDirection(d.Notation())
		require.NoError(t, err)
		assert.Equal(t, d, got)

		got, err = ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDirection("NorthWest")
	require.NoError(t, err)
	assert.Equal(t, NorthWest, got)

	_, err = ParseDirection("Up")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestOctants(t *testing.T) {
	assert.Equal(t, []Direction{North, East, South, West}, Cardinal.Directions())
	assert.Equal(t, []Direction{NorthEast, SouthEast, SouthWest, NorthWest}, Diagonal.Directions())
	assert.True(t, Cardinal.Contains(South))
	assert.False(t, Cardinal.Contains(SouthEast))
	assert.True(t, Diagonal.Contains(NorthWest))
	assert.False(t, Diagonal.Contains(Direction(9)))
}

func TestTranslate(t *testing.T) {
	origin := Coordinate{Row: 3, Col: 3}
	assert.Equal(t, Coordinate{Row: 2, Col: 3}, origin.Translate(North, 1))
	assert.Equal(t, Coordinate{Row: 1, Col: 3}, origin.Translate(North, 2))
	assert.Equal(t, Coordinate{Row: 5, Col: 1}, origin.Translate(SouthWest, 2))
	assert.Equal(t, origin, origin.Translate(East, 0))

	neighbors := origin.EachDirection()
	require.Len(t, neighbors, 8)
	assert.Equal(t, Neighbor{Direction: North, Coordinate: Coordinate{Row: 2, Col: 3}}, neighbors[0])
	assert.Equal(t, Neighbor{Direction: NorthWest, Coordinate: Coordinate{Row: 2, Col: 2}}, neighbors[7])
}
