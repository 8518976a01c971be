package gameservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	gamedb "github.com/Black-And-White-Club/bowling-bot/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
	"github.com/google/uuid"
)

// GetGame returns the current score sheet of a game.
func (s *GameService) GetGame(ctx context.Context, gameID uuid.UUID) (gamedto.GameView, error) {
	return withTelemetryValue(s, ctx, "GetGame", gameID.String(), func(ctx context.Context) (gamedto.GameView, error) {
		rec, err := s.record(ctx, gameID)
		if err != nil {
			return gamedto.GameView{}, err
		}
		return renderView(rec), nil
	})
}

// ListGames returns a summary of every registered game, oldest first.
func (s *GameService) ListGames(ctx context.Context) ([]gamedto.GameSummary, error) {
	return withTelemetryValue(s, ctx, "ListGames", "", func(ctx context.Context) ([]gamedto.GameSummary, error) {
		recs, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}

		summaries := make([]gamedto.GameSummary, 0, len(recs))
		for _, rec := range recs {
			rec.View(func(g *gamedomain.Game, updatedAt time.Time) {
				summaries = append(summaries, gamedto.NewGameSummary(rec.ID.String(), rec.CreatedAt, updatedAt, g))
			})
		}
		return summaries, nil
	})
}

// DeleteGame abandons a game.
func (s *GameService) DeleteGame(ctx context.Context, gameID uuid.UUID) error {
	_, err := withTelemetryValue(s, ctx, "DeleteGame", gameID.String(), func(ctx context.Context) (struct{}, error) {
		if err := s.repo.Delete(ctx, gameID); err != nil {
			if errors.Is(err, gamedb.ErrNotFound) {
				return struct{}{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
			}
			return struct{}{}, err
		}

		s.metrics.RecordActiveGames(ctx, s.repo.Count())
		s.logger.InfoContext(ctx, "Game deleted",
			attr.GameID(gameID.String()),
			attr.ExtractCorrelationID(ctx),
		)
		return struct{}{}, nil
	})
	return err
}

// renderView renders a record under its lock.
func renderView(rec *gamedb.Record) gamedto.GameView {
	var v gamedto.GameView
	rec.View(func(g *gamedomain.Game, _ time.Time) {
		v = gamedto.NewGameView(rec.ID.String(), rec.CreatedAt, g)
	})
	return v
}
