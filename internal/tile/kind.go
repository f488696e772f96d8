package tile

import (
	"errors"
	"fmt"
	"strings"

	"philosophy/internal/spatial"
)

var ErrUnknownKind = errors.New("unknown tile kind")

// Kind is the closed set of idea tile variants.
type Kind uint8

const (
	KindNone Kind = iota
	Push
	CornerPush
	SlideLeft
	SlideRight
	PullLeft
	PullRight
	LongShot
	CornerLongShot
	Decision
	Rephrase
	Toss
	Persuade
)

// TargetType says whose tiles an activation may affect.
type TargetType uint8

const (
	TargetOpponent TargetType = iota
	TargetAny
)

// EffectKind tags the activation transform.
type EffectKind uint8

const (
	// EffectDisplace moves the targeted tile Steps cells in the activator's
	// facing turned by Turn.
	EffectDisplace EffectKind = iota + 1
	// EffectDecide offers the player a move to the left or right of facing.
	EffectDecide
	// EffectReorient offers every facing valid for the targeted tile's kind.
	EffectReorient
)

type Effect struct {
	Kind  EffectKind
	Turn  spatial.Turn
	Steps int
}

// Impact resolves a displacement effect against the activator's facing.
func (e Effect) Impact(facing spatial.Direction) (spatial.Direction, int) {
	return facing.Turn(e.Turn), e.Steps
}

type Descriptor struct {
	Kind       Kind
	Code       string
	Name       string
	Octant     spatial.Octant
	Distance   int
	TargetType TargetType
	Effect     Effect
}

func displace(turn spatial.Turn, steps int) Effect {
	return Effect{Kind: EffectDisplace, Turn: turn, Steps: steps}
}

var registry = map[Kind]Descriptor{
	Push:           {Code: "Pu", Name: "push", Octant: spatial.Cardinal, Distance: 1, Effect: displace(spatial.TurnForward, 1)},
	CornerPush:     {Code: "Cp", Name: "corner_push", Octant: spatial.Diagonal, Distance: 1, Effect: displace(spatial.TurnForward, 1)},
	SlideLeft:      {Code: "Sl", Name: "slide_left", Octant: spatial.Cardinal, Distance: 1, Effect: displace(spatial.TurnLeft, 1)},
	SlideRight:     {Code: "Sr", Name: "slide_right", Octant: spatial.Cardinal, Distance: 1, Effect: displace(spatial.TurnRight, 1)},
	PullLeft:       {Code: "Pl", Name: "pull_left", Octant: spatial.Cardinal, Distance: 1, Effect: displace(spatial.TurnPullLeft, 1)},
	PullRight:      {Code: "Pr", Name: "pull_right", Octant: spatial.Cardinal, Distance: 1, Effect: displace(spatial.TurnPullRight, 1)},
	LongShot:       {Code: "Ls", Name: "long_shot", Octant: spatial.Cardinal, Distance: 2, Effect: displace(spatial.TurnForward, 1)},
	CornerLongShot: {Code: "Cl", Name: "corner_long_shot", Octant: spatial.Diagonal, Distance: 2, Effect: displace(spatial.TurnForward, 1)},
	Decision:       {Code: "De", Name: "decision", Octant: spatial.Diagonal, Distance: 1, Effect: Effect{Kind: EffectDecide}},
	Rephrase:       {Code: "Re", Name: "rephrase", Octant: spatial.Diagonal, Distance: 1, TargetType: TargetAny, Effect: Effect{Kind: EffectReorient}},
	Toss:           {Code: "To", Name: "toss", Octant: spatial.Cardinal, Distance: 1, Effect: displace(spatial.TurnBackward, 2)},
	Persuade:       {Code: "Pe", Name: "persuade", Octant: spatial.Cardinal, Distance: 1, Effect: displace(spatial.TurnBackward, 1)},
}

var byCode = func() map[string]Kind {
	m := make(map[string]Kind, len(registry)*2)
	for k, d := range registry {
		m[d.Code] = k
		m[d.Name] = k
	}
	return m
}()

// Kinds lists every registered kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := Push; k <= Persuade; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind accepts a two-letter code ("Pu") or a snake_case name ("corner_push").
func ParseKind(s string) (Kind, error) {
	if k, ok := byCode[s]; ok {
		return k, nil
	}
	if k, ok := byCode[strings.ToLower(s)]; ok {
		return k, nil
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) Valid() bool {
	_, ok := registry[k]
	return ok
}

// Descriptor returns the registration for k. Unknown kinds yield the zero
// descriptor; callers validate first.
func (k Kind) Descriptor() Descriptor {
	d := registry[k]
	d.Kind = k
	return d
}

func (k Kind) Code() string           { return registry[k].Code }
func (k Kind) Octant() spatial.Octant { return registry[k].Octant }

// TargetDistance is how many cells ahead the activation target sits.
func (k Kind) TargetDistance() int { return registry[k].Distance }

func (k Kind) String() string {
	if d, ok := registry[k]; ok {
		return d.Name
	}
	return "none"
}
