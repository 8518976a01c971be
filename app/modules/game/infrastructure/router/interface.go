package gamerouter

import (
	"context"

	gamehandlers "github.com/Black-And-White-Club/bowling-bot/app/modules/game/infrastructure/handlers"
)

// Router wires the game handlers to the event bus.
type Router interface {
	Configure(ctx context.Context, handlers gamehandlers.Handlers) error
	Close() error
}
