package activation

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"philosophy/internal/board"
	"philosophy/internal/spatial"
	"philosophy/internal/tile"
)

// Hand is a player's tile inventory as seen by Place.
type Hand interface {
	Code() string
	Has(kind tile.Kind) bool
	Take(kind tile.Kind) (tile.Tile, error)
}

type set map[string]struct{}

func (s set) sorted() []string {
	out := slices.Collect(maps.Keys(s))
	sort.Strings(out)
	return out
}

// Context is one immutable step of a turn. Every operation returns a new
// Context; the receiver is never modified.
type Context struct {
	player     string
	board      board.Board
	removed    []tile.Tile
	activators set
	targets    set
	activated  set
	options    map[string]Continuation
	operations []Operation
}

// New starts a turn for player on a settled board.
func New(player string, b board.Board) *Context {
	return &Context{
		player:     player,
		board:      b,
		activators: set{},
		targets:    set{},
		activated:  set{},
		options:    map[string]Continuation{},
	}
}

func (c *Context) next() *Context {
	return &Context{
		player:     c.player,
		board:      c.board,
		removed:    slices.Clone(c.removed),
		activators: maps.Clone(c.activators),
		targets:    maps.Clone(c.targets),
		activated:  maps.Clone(c.activated),
		options:    maps.Clone(c.options),
		operations: slices.Clone(c.operations),
	}
}

func (c *Context) Player() string { return c.player }

// Board materializes the current positions.
func (c *Context) Board() board.Board { return c.board }

func (c *Context) Space(name string) (board.Space, bool) { return c.board.Space(name) }

func (c *Context) RemovedTiles() []tile.Tile { return slices.Clone(c.removed) }

func (c *Context) PossibleActivations() []string { return c.activators.sorted() }

func (c *Context) PossibleActivationTargets() []string { return c.targets.sorted() }

// AlreadyActivated lists tile names activated this turn.
func (c *Context) AlreadyActivated() []string { return c.activated.sorted() }

// Options lists the pending choice keys in sorted order.
func (c *Context) Options() []string {
	out := slices.Collect(maps.Keys(c.options))
	sort.Strings(out)
	return out
}

func (c *Context) Continuation(key string) (Continuation, bool) {
	cont, ok := c.options[key]
	return cont, ok
}

func (c *Context) Operations() []Operation { return slices.Clone(c.operations) }

// Settled reports whether no choice is pending.
func (c *Context) Settled() bool { return len(c.options) == 0 }

func (c *Context) log(op Operation) { c.operations = append(c.operations, op) }

// Place puts a tile from hand on a centre cell. All preconditions are checked
// before the tile is taken.
func (c *Context) Place(hand Hand, kind tile.Kind, location string, direction spatial.Direction) (*Context, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTileType, kind)
	}
	space, ok := c.board.Space(location)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	if !space.Playable() {
		return nil, fmt.Errorf("%w: %s", ErrLocationOutsidePlacementSpace, location)
	}
	if space.Occupied() {
		return nil, fmt.Errorf("%w: %s", ErrCannotPlaceAtopExistingTile, location)
	}
	if !hand.Has(kind) {
		return nil, fmt.Errorf("%w: %s%s", ErrUnavailableTile, hand.Code(), kind.Code())
	}
	if !kind.Octant().Contains(direction) {
		return nil, fmt.Errorf("%w: %s cannot face %s", ErrCannotOrientInTargetDirection, kind, direction)
	}

	t, err := hand.Take(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailableTile, err)
	}
	t = t.WithFacing(direction)

	n := c.next()
	n.board = n.board.With(location, &t)
	n.log(Operation{Kind: OpPlace, Location: location, Tile: t, Direction: direction})
	n.considerActivating(location)
	return n, nil
}

// Move slides the tile at from by distance cells. A tile moved off the board
// is removed; a tile in the way is first pushed one cell further.
func (c *Context) Move(from string, direction spatial.Direction, distance int) (*Context, error) {
	if distance < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDistance, distance)
	}
	space, ok := c.board.Space(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, from)
	}
	t, ok := space.Tile()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmptySpace, from)
	}
	dest, ok := c.board.SpaceAt(space.Coordinate.Translate(direction, distance))
	if !ok {
		n := c.next()
		n.board = n.board.With(from, nil)
		n.removed = append(n.removed, t)
		n.log(Operation{Kind: OpRemove, Location: from, Tile: t, Direction: direction})
		n.stageCandidates()
		return n, nil
	}

	base := c
	if dest.Occupied() {
		var err error
		if base, err = c.Move(dest.Name, direction, 1); err != nil {
			return nil, err
		}
	}

	n := base.next()
	n.board = n.board.With(from, nil).With(dest.Name, &t)
	n.log(Operation{Kind: OpMove, Location: from, Destination: dest.Name, Tile: t, Direction: direction})
	n.considerActivating(dest.Name)
	return n, nil
}

// Rotate turns the tile at target to face direction, then considers whatever
// the tile now aims at.
func (c *Context) Rotate(target string, direction spatial.Direction) (*Context, error) {
	space, ok := c.board.Space(target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, target)
	}
	t, ok := space.Tile()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmptySpace, target)
	}
	if !t.CanFace(direction) {
		return nil, fmt.Errorf("%w: %s cannot face %s", ErrCannotOrientInTargetDirection, t.Kind, direction)
	}

	t = t.WithFacing(direction)
	n := c.next()
	n.board = n.board.With(target, &t)
	n.log(Operation{Kind: OpRotate, Location: target, Tile: t, Direction: direction})
	aim, _ := n.board.ActivationTarget(target)
	n.considerActivating(aim.Name)
	return n, nil
}

// Activate fires the tile at location against its activation target.
func (c *Context) Activate(location string) (*Context, error) {
	space, ok := c.board.Space(location)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	t, ok := space.Tile()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmptySpace, location)
	}
	target, ok := c.board.ActivationTarget(location)
	if !ok || !target.Occupied() {
		return nil, fmt.Errorf("%w: %s", ErrNothingToActivate, location)
	}

	n := c.next()
	n.activated[t.Name()] = struct{}{}
	n.log(Operation{Kind: OpActivate, Location: location, Tile: t, Direction: t.Facing})

	effect := t.Kind.Descriptor().Effect
	switch effect.Kind {
	case tile.EffectDisplace:
		direction, steps := effect.Impact(t.Facing)
		return n.Move(target.Name, direction, steps)
	case tile.EffectDecide:
		n.options = map[string]Continuation{}
		for _, d := range []spatial.Direction{t.Facing.Left(), t.Facing.Right()} {
			key := OffBoard
			if dest, ok := n.board.SpaceAt(target.Coordinate.Translate(d, 1)); ok {
				key = dest.Name
			}
			n.options[key] = Continuation{Kind: ContinueMove, Location: target.Name, Direction: d, Distance: 1}
		}
		return n, nil
	case tile.EffectReorient:
		targeted, _ := target.Tile()
		n.options = map[string]Continuation{}
		for _, d := range targeted.Kind.Octant().Directions() {
			n.options[d.Notation()] = Continuation{Kind: ContinueRotate, Location: target.Name, Direction: d}
		}
		return n, nil
	}
	return nil, fmt.Errorf("%w: %s has no effect", ErrInvalidTileType, t.Kind)
}

// Choose applies the continuation staged under key, then collapses any
// forced choices.
func (c *Context) Choose(key string) (*Context, error) {
	n, err := c.take(key, false)
	if err != nil {
		return nil, err
	}
	return n.Resolve()
}

// Resolve takes the only option while exactly one is pending.
func (c *Context) Resolve() (*Context, error) {
	n := c
	for len(n.options) == 1 {
		var key string
		for k := range n.options {
			key = k
		}
		var err error
		if n, err = n.take(key, true); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) take(key string, automatic bool) (*Context, error) {
	cont, ok := c.options[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (options %v)", ErrInvalidChoice, key, c.Options())
	}
	n := c.next()
	n.log(Operation{Kind: OpChoose, Key: key, Automatic: automatic})
	switch cont.Kind {
	case ContinueActivate:
		return n.Activate(cont.Location)
	case ContinueMove:
		return n.Move(cont.Location, cont.Direction, cont.Distance)
	case ContinueRotate:
		return n.Rotate(cont.Location, cont.Direction)
	}
	return nil, fmt.Errorf("%w: %q has no continuation", ErrInvalidChoice, key)
}

// considerActivating flags an occupied location and stages the resulting
// activation candidates. An empty or off-board location clears the options.
func (c *Context) considerActivating(location string) {
	space, ok := c.board.Space(location)
	if !ok || !space.Occupied() {
		c.options = map[string]Continuation{}
		return
	}
	t, _ := space.Tile()
	if t.Owner == c.player {
		c.activators[location] = struct{}{}
	} else {
		c.targets[location] = struct{}{}
	}
	c.stageCandidates()
}

func (c *Context) stageCandidates() {
	c.options = map[string]Continuation{}
	for _, loc := range c.ActivationCandidates() {
		c.options[loc] = Continuation{Kind: ContinueActivate, Location: loc}
	}
}

// ActivationCandidates lists the current player's tiles that may fire: those
// flagged as possible activations aiming at an opponent, and those aiming at
// a flagged target an opponent now holds. Tiles already activated this turn
// are excluded.
func (c *Context) ActivationCandidates() []string {
	found := set{}
	for loc := range c.activators {
		if c.ownedAimingAtOpponent(loc) {
			found[loc] = struct{}{}
		}
	}
	for target := range c.targets {
		if !c.opponentAt(target) {
			continue
		}
		for _, s := range c.board.Tiles(c.player) {
			if aim, ok := c.board.ActivationTarget(s.Name); ok && aim.Name == target {
				found[s.Name] = struct{}{}
			}
		}
	}
	for loc := range found {
		s, _ := c.board.Space(loc)
		t, _ := s.Tile()
		if _, done := c.activated[t.Name()]; done {
			delete(found, loc)
		}
	}
	return found.sorted()
}

func (c *Context) ownedAimingAtOpponent(loc string) bool {
	s, ok := c.board.Space(loc)
	if !ok {
		return false
	}
	t, ok := s.Tile()
	if !ok || t.Owner != c.player {
		return false
	}
	aim, ok := c.board.ActivationTarget(loc)
	return ok && c.opponentAt(aim.Name)
}

func (c *Context) opponentAt(name string) bool {
	s, ok := c.board.Space(name)
	if !ok {
		return false
	}
	t, ok := s.Tile()
	return ok && t.Owner != c.player
}
