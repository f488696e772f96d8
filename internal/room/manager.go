package room

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"philosophy/internal/config"
	"philosophy/internal/game"
	"philosophy/internal/log"
)

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
	log   *log.Logger
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub, log: log.Default()}
}

// CreateRoom opens a room with a fresh game using the configured rules.
// metadata seeds the game's record tags.
func (m *Manager) CreateRoom(metadata map[string]string) (*Room, error) {
	for {
		r, err := m.CreateRoomWithCode(randCode(m.cfg.RoomCodeLength), metadata)
		if errors.Is(err, ErrCodeInUse) {
			continue
		}
		return r, err
	}
}

func (m *Manager) CreateRoomWithCode(code string, metadata map[string]string) (*Room, error) {
	rules, err := game.RulesFromConfig(m.cfg.Rules)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	g := game.New(
		game.WithID(id),
		game.WithRules(rules),
		game.WithMetadata(metadata),
		game.WithLogger(m.log.With("room", code)),
	)
	r, err := m.open(newRoom(id, code, g))
	if err != nil {
		return nil, err
	}
	m.log.Info("room %s created for game %s", code, id)
	return r, nil
}

// Load opens a room replaying a recorded game.
func (m *Manager) Load(code, pgn string) (*Room, error) {
	if _, taken := m.store.GetRoom(code); taken {
		return nil, fmt.Errorf("%w: %s", ErrCodeInUse, code)
	}
	rules, err := game.RulesFromConfig(m.cfg.Rules)
	if err != nil {
		return nil, err
	}
	g, err := game.FromPGN(pgn, game.WithRules(rules), game.WithLogger(m.log.With("room", code)))
	if err != nil {
		return nil, err
	}
	return m.open(newRoom(g.ID, code, g))
}

// open claims the room's code in the store.
func (m *Manager) open(r *Room) (*Room, error) {
	if !m.store.SaveRoomIfAbsent(r) {
		return nil, fmt.Errorf("%w: %s", ErrCodeInUse, r.Code)
	}
	return r, nil
}

func (m *Manager) SetLogger(l *log.Logger) { m.log = l }

// Codes lists the open rooms.
func (m *Manager) Codes() []string { return m.store.Codes() }

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) Close(code string) {
	m.store.DeleteRoom(code)
}

// Apply executes one event notation in the room and broadcasts the result.
func (m *Manager) Apply(code, notation string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}

	var (
		state  game.State
		winner string
		over   bool
	)
	err := r.Do(func(g *game.Game) error {
		if err := g.Apply(notation); err != nil {
			return err
		}
		state = g.Export()
		if w, ok := g.Winner(); ok {
			winner = w.Code()
		}
		over = g.Over()
		return nil
	})
	if err != nil {
		return err
	}

	if over {
		m.hub.Broadcast(r.Code, "game_over", map[string]any{
			"event":  notation,
			"winner": winner,
			"board":  state.Board,
		})
	} else {
		m.hub.Broadcast(r.Code, "event", map[string]any{
			"event":    notation,
			"board":    state.Board,
			"options":  state.Options,
			"nextTurn": state.CurrentPlayer,
		})
	}

	m.store.SaveRoom(r)
	return nil
}

// Summary exports the state of the game in a room.
func (m *Manager) Summary(code string) (game.State, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return game.State{}, fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	return r.Snapshot(), nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
