package room

import (
	"errors"
	"sync"
	"time"

	"philosophy/internal/game"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrCodeInUse    = errors.New("room code already in use")
)

// Room is a table hosting one game. The game itself is not safe for
// concurrent use, so every access goes through the room lock.
type Room struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`

	mu   sync.Mutex
	game *game.Game
}

func newRoom(id, code string, g *game.Game) *Room {
	return &Room{ID: id, Code: code, CreatedAt: time.Now(), game: g}
}

// Do runs fn with exclusive access to the room's game.
func (r *Room) Do(fn func(g *game.Game) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.game)
}

// Snapshot exports the game under the room lock.
func (r *Room) Snapshot() game.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Export()
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	// SaveRoomIfAbsent stores r unless its code is taken, reporting whether it did.
	SaveRoomIfAbsent(r *Room) bool
	DeleteRoom(code string)
	Codes() []string
}
