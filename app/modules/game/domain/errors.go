package gamedomain

import "errors"

// Setup errors. Once a game has started, bad input is rejected through a
// Verdict instead.
var (
	ErrNoPlayers      = errors.New("at least one player is required")
	ErrTooManyPlayers = errors.New("too many players")
	ErrBlankName      = errors.New("player name is blank")
)
