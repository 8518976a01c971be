package gamedb

import (
	"context"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	"github.com/google/uuid"
)

// Repository holds the games currently being bowled.
type Repository interface {
	Create(ctx context.Context, game *gamedomain.Game) (*Record, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count() int
}
