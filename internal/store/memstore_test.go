package store

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philosophy/internal/config"
	"philosophy/internal/log"
	"philosophy/internal/room"
)

type nopHub struct{}

func (nopHub) Broadcast(string, string, any) {}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	m := room.NewManager(s, config.Default(), nopHub{})
	m.SetLogger(log.New(io.Discard, log.LevelError))

	for _, code := range []string{"BBBB", "AAAA"} {
		_, err := m.CreateRoomWithCode(code, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"AAAA", "BBBB"}, s.Codes())

	r, ok := s.GetRoom("AAAA")
	require.True(t, ok)
	assert.Equal(t, "AAAA", r.Code)

	elsewhere := room.NewManager(NewMemoryStore(), config.Default(), nopHub{})
	elsewhere.SetLogger(log.New(io.Discard, log.LevelError))
	other, err := elsewhere.CreateRoomWithCode("AAAA", nil)
	require.NoError(t, err)
	assert.False(t, s.SaveRoomIfAbsent(other))
	kept, _ := s.GetRoom("AAAA")
	assert.Same(t, r, kept)

	s.DeleteRoom("AAAA")
	assert.True(t, s.SaveRoomIfAbsent(other))
	kept, _ = s.GetRoom("AAAA")
	assert.Same(t, other, kept)
	s.DeleteRoom("AAAA")
	_, ok = s.GetRoom("AAAA")
	assert.False(t, ok)
	assert.Equal(t, []string{"BBBB"}, s.Codes())
}
