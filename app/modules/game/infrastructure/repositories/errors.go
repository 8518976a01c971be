package gamedb

import "errors"

// Sentinel errors for the game registry.
var (
	// ErrNotFound indicates no live game has the requested id.
	ErrNotFound = errors.New("game not found")

	// ErrCapacity indicates the registry is full of games that are still in use.
	ErrCapacity = errors.New("game registry is full")
)
