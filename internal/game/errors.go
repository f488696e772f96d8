package game

import "errors"

var (
	ErrInsufficientPlayers   = errors.New("at least two players are needed")
	ErrIncorrectPlayer       = errors.New("not this player's turn")
	ErrGameOver              = errors.New("game is over")
	ErrChoicePending         = errors.New("a choice is pending")
	ErrPlayerCodeAlreadyUsed = errors.New("player code already used")
	ErrUnknownPlayer         = errors.New("unknown player")
	ErrDisallowedByRule      = errors.New("disallowed by rule")
	ErrUnknownEvent          = errors.New("unknown event notation")
	ErrUnknownRule           = errors.New("unknown rule")
)
