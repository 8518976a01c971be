package gameservice

import (
	"context"
	"errors"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	gamedb "github.com/Black-And-White-Club/bowling-bot/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/results"
)

// CreateGame starts a game. An invalid roster is a failure result, not an
// error.
func (s *GameService) CreateGame(ctx context.Context, names []string) (CreateGameResult, error) {
	return withTelemetry(s, ctx, "CreateGame", "", func(ctx context.Context) (CreateGameResult, error) {
		game, err := gamedomain.NewGame(names)
		if err != nil {
			return results.FailureResult[gamedto.GameView](CreateGameFailure{Reason: err.Error()}), nil
		}

		rec, err := s.repo.Create(ctx, game)
		if errors.Is(err, gamedb.ErrCapacity) {
			return CreateGameResult{}, ErrRegistryFull
		}
		if err != nil {
			return CreateGameResult{}, err
		}

		view := renderView(rec)

		s.metrics.RecordGameStarted(ctx, game.PlayerCount())
		s.metrics.RecordActiveGames(ctx, s.repo.Count())
		s.logger.InfoContext(ctx, "Game started",
			attr.GameID(view.ID),
			attr.Int("players", game.PlayerCount()),
			attr.ExtractCorrelationID(ctx),
		)

		return results.SuccessResult[gamedto.GameView, CreateGameFailure](view), nil
	})
}
