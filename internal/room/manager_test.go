package room_test

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philosophy/internal/config"
	"philosophy/internal/game"
	"philosophy/internal/log"
	"philosophy/internal/room"
	"philosophy/internal/store"
)

type message struct {
	code   string
	action string
	data   map[string]any
}

type recorder struct {
	mu       sync.Mutex
	messages []message
}

func (r *recorder) Broadcast(code, action string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message{code, action, data.(map[string]any)})
}

func (r *recorder) last() message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.messages[len(r.messages)-1]
}

func newManager(cfg config.Config) (*room.Manager, *recorder) {
	hub := &recorder{}
	m := room.NewManager(store.NewMemoryStore(), cfg, hub)
	m.SetLogger(log.New(io.Discard, log.LevelError))
	return m, hub
}

func TestCreateRoom(t *testing.T) {
	m, _ := newManager(config.Default())
	r, err := m.CreateRoom(map[string]string{"Event": "Friday"})
	require.NoError(t, err)
	assert.Len(t, r.Code, 6)
	assert.NotEmpty(t, r.ID)

	got, ok := m.Get(r.Code)
	require.True(t, ok)
	assert.Same(t, r, got)

	state, err := m.Summary(r.Code)
	require.NoError(t, err)
	assert.Equal(t, r.ID, state.ID)
	assert.Equal(t, "Friday", state.Metadata["Event"])
	assert.Equal(t, []string{r.Code}, m.Codes())

	m.Close(r.Code)
	_, ok = m.Get(r.Code)
	assert.False(t, ok)
}

func TestCreateRoomWithCode(t *testing.T) {
	m, _ := newManager(config.Default())
	_, err := m.CreateRoomWithCode("TABLE1", nil)
	require.NoError(t, err)

	_, err = m.CreateRoomWithCode("TABLE1", nil)
	assert.ErrorIs(t, err, room.ErrCodeInUse)
}

func TestConcurrentCreateWithSameCode(t *testing.T) {
	m, _ := newManager(config.Default())

	const attempts = 8
	var wg sync.WaitGroup
	rooms := make([]*room.Room, attempts)
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rooms[i], errs[i] = m.CreateRoomWithCode("SHARED", nil)
		}()
	}
	wg.Wait()

	var winner *room.Room
	for i, err := range errs {
		if err == nil {
			require.Nil(t, winner, "only one create may claim the code")
			winner = rooms[i]
			continue
		}
		assert.ErrorIs(t, err, room.ErrCodeInUse)
	}
	require.NotNil(t, winner)
	got, ok := m.Get("SHARED")
	require.True(t, ok)
	assert.Same(t, winner, got)
}

func TestCreateRoomUsesConfiguredRules(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.JoinWhen = "after_placement"
	cfg.Rules.LeaveWhat = "remove_their_tiles"
	m, _ := newManager(cfg)

	r, err := m.CreateRoom(nil)
	require.NoError(t, err)
	state := r.Snapshot()
	assert.Equal(t, game.JoinAfterPlacement, state.Rules.Join.When)
	assert.Equal(t, game.LeaveRemoveTheirTiles, state.Rules.Leave.What)
}

func TestApplyBroadcasts(t *testing.T) {
	m, hub := newManager(config.Default())
	r, err := m.CreateRoomWithCode("TABLE1", nil)
	require.NoError(t, err)

	for _, e := range []string{"In+:indigo", "Te+:teal", "In:C4PuNo"} {
		require.NoError(t, m.Apply(r.Code, e))
	}
	msg := hub.last()
	assert.Equal(t, "TABLE1", msg.code)
	assert.Equal(t, "event", msg.action)
	assert.Equal(t, "In:C4PuNo", msg.data["event"])
	assert.Equal(t, "C4:InPuNo", msg.data["board"])
	assert.Equal(t, "Te", msg.data["nextTurn"])

	before := len(hub.messages)
	assert.ErrorIs(t, m.Apply(r.Code, "In:C5PuNo"), game.ErrIncorrectPlayer)
	assert.Len(t, hub.messages, before, "rejected events are not broadcast")

	assert.ErrorIs(t, m.Apply("NOPE", "In+"), room.ErrRoomNotFound)
}

func TestApplyGameOver(t *testing.T) {
	m, hub := newManager(config.Default())
	r, err := m.CreateRoom(nil)
	require.NoError(t, err)

	for _, e := range []string{
		"In+:indigo", "Te+:teal",
		"In:C1PuNo", "Te:C7PuSo", "In:C2SlNo", "Te:C8SlSo", "In:C3SrNo",
	} {
		require.NoError(t, m.Apply(r.Code, e))
	}
	msg := hub.last()
	assert.Equal(t, "game_over", msg.action)
	assert.Equal(t, "In", msg.data["winner"])

	state, err := m.Summary(r.Code)
	require.NoError(t, err)
	assert.True(t, state.Over)
	assert.Equal(t, 1, state.Conclusions)
}

func TestLoad(t *testing.T) {
	m, _ := newManager(config.Default())
	pgn := "[Event \"Replay\"]\n\nIn+:indigo\nTe+:teal\nIn:C4PuNo\n"
	r, err := m.Load("REPLAY", pgn)
	require.NoError(t, err)

	state := r.Snapshot()
	assert.Equal(t, "C4:InPuNo", state.Board)
	assert.Equal(t, "Te", state.CurrentPlayer)
	assert.Equal(t, "Replay", state.Metadata["Event"])

	_, err = m.Load("REPLAY", pgn)
	assert.ErrorIs(t, err, room.ErrCodeInUse)
}

func TestConcurrentApply(t *testing.T) {
	m, _ := newManager(config.Default())
	r, err := m.CreateRoom(nil)
	require.NoError(t, err)
	require.NoError(t, m.Apply(r.Code, "In+:indigo"))
	require.NoError(t, m.Apply(r.Code, "Te+:teal"))

	// Both race for the first turn. Te is either out of turn or blocked.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, e := range []string{"In:C4PuNo", "Te:C4PuNo"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = m.Apply(r.Code, e)
		}()
	}
	wg.Wait()
	assert.NoError(t, errs[0])
	assert.Error(t, errs[1])
	assert.Equal(t, "C4:InPuNo", r.Snapshot().Board)
}
