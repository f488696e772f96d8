package activation

import (
	"fmt"

	"philosophy/internal/spatial"
	"philosophy/internal/tile"
)

// OffBoard is the choice key for a destination outside the board.
const OffBoard = "OO"

type ContinuationKind uint8

const (
	ContinueActivate ContinuationKind = iota + 1
	ContinueMove
	ContinueRotate
)

func (k ContinuationKind) String() string {
	switch k {
	case ContinueActivate:
		return "activate"
	case ContinueMove:
		return "move"
	case ContinueRotate:
		return "rotate"
	}
	return "unknown"
}

// Continuation is a deferred operation waiting on a player choice. It is
// plain data; Choose dispatches on Kind.
type Continuation struct {
	Kind      ContinuationKind  `json:"kind"`
	Location  string            `json:"location"`
	Direction spatial.Direction `json:"direction,omitempty"`
	Distance  int               `json:"distance,omitempty"`
}

func (c Continuation) String() string {
	switch c.Kind {
	case ContinueMove:
		return fmt.Sprintf("move %s %s %d", c.Location, c.Direction.Notation(), c.Distance)
	case ContinueRotate:
		return fmt.Sprintf("rotate %s %s", c.Location, c.Direction.Notation())
	}
	return fmt.Sprintf("%s %s", c.Kind, c.Location)
}

type OperationKind uint8

const (
	OpPlace OperationKind = iota + 1
	OpMove
	OpRemove
	OpRotate
	OpActivate
	OpChoose
)

var operationNames = map[OperationKind]string{
	OpPlace:    "place",
	OpMove:     "move",
	OpRemove:   "remove",
	OpRotate:   "rotate",
	OpActivate: "activate",
	OpChoose:   "choose",
}

func (k OperationKind) String() string { return operationNames[k] }

// Operation is one entry of a context's log.
type Operation struct {
	Kind        OperationKind     `json:"kind"`
	Location    string            `json:"location,omitempty"`
	Destination string            `json:"destination,omitempty"`
	Tile        tile.Tile         `json:"tile"`
	Direction   spatial.Direction `json:"direction,omitempty"`
	Key         string            `json:"key,omitempty"`
	Automatic   bool              `json:"automatic,omitempty"`
}

func (o Operation) String() string {
	switch o.Kind {
	case OpPlace:
		return fmt.Sprintf("place %s@%s", o.Tile.Notation(), o.Location)
	case OpMove:
		return fmt.Sprintf("move %s %s->%s", o.Tile.Notation(), o.Location, o.Destination)
	case OpRemove:
		return fmt.Sprintf("remove %s@%s", o.Tile.Notation(), o.Location)
	case OpRotate:
		return fmt.Sprintf("rotate %s@%s", o.Tile.Notation(), o.Location)
	case OpActivate:
		return fmt.Sprintf("activate %s@%s", o.Tile.Notation(), o.Location)
	case OpChoose:
		if o.Automatic {
			return "choose " + o.Key + " (auto)"
		}
		return "choose " + o.Key
	}
	return "unknown"
}
