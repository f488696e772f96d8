package room

import "philosophy/internal/log"

type Broadcaster interface {
	Broadcast(roomCode string, action string, data any)
}

// LogBroadcaster writes every broadcast to a logger at debug level.
type LogBroadcaster struct {
	Logger *log.Logger
}

func (b LogBroadcaster) Broadcast(roomCode string, action string, data any) {
	l := b.Logger
	if l == nil {
		l = log.Default()
	}
	l.With("room", roomCode).Debug("%s %v", action, data)
}
