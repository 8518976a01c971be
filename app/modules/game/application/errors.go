package gameservice

import "errors"

// Errors returned by the game service. Rule violations are not errors; they
// come back as failure results.
var (
	// ErrGameNotFound indicates no live game has the requested id.
	ErrGameNotFound = errors.New("game not found")

	// ErrRegistryFull indicates no new game can be started right now.
	ErrRegistryFull = errors.New("too many games in progress")
)
