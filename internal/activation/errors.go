package activation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTileType               = errors.New("invalid tile type")
	ErrInvalidLocation               = errors.New("invalid location")
	ErrLocationOutsidePlacementSpace = fmt.Errorf("%w: outside placement space", ErrInvalidLocation)
	ErrCannotPlaceAtopExistingTile   = errors.New("cannot place atop existing tile")
	ErrUnavailableTile               = errors.New("tile unavailable")
	ErrCannotOrientInTargetDirection = errors.New("cannot orient in target direction")
	ErrInvalidChoice                 = errors.New("invalid choice")
	ErrEmptySpace                    = errors.New("space is empty")
	ErrNothingToActivate             = errors.New("nothing to activate")
	ErrInvalidDistance               = errors.New("distance must be at least one cell")
)
