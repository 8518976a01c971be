package gameservice

import (
	"context"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/results"
	"github.com/google/uuid"
)

// SubmitRoll records one ball. The game is locked for the whole
// validate-record-rescore-advance step.
func (s *GameService) SubmitRoll(ctx context.Context, gameID uuid.UUID, turn gamedto.Turn, value string) (SubmitRollResult, error) {
	return withTelemetry(s, ctx, "SubmitRoll", gameID.String(), func(ctx context.Context) (SubmitRollResult, error) {
		rec, err := s.record(ctx, gameID)
		if err != nil {
			return SubmitRollResult{}, err
		}

		var (
			verdict   gamedomain.Verdict
			mark      string
			completed bool
			topScore  int
			view      gamedto.GameView
		)
		rec.Update(func(g *gamedomain.Game) {
			at := turn.Domain()
			verdict = g.SubmitRoll(at, value)
			if verdict.OK() {
				p, _ := g.Player(at.Player)
				mark = p.Frames[at.Frame].Rolls[at.Roll].String()
				completed = g.Complete()
				if w, ok := g.Winner(); ok {
					topScore = w.TotalScore
				}
			}
			view = gamedto.NewGameView(rec.ID.String(), rec.CreatedAt, g)
		})

		s.metrics.RecordRoll(ctx, verdict.String())

		if !verdict.OK() {
			s.logger.InfoContext(ctx, "Roll rejected",
				attr.GameID(gameID.String()),
				attr.Turn(turn.Player, turn.Frame, turn.Roll),
				attr.String("value", value),
				attr.String("reason", verdict.String()),
				attr.ExtractCorrelationID(ctx),
			)
			return results.FailureResult[RollAccepted](RollRejected{
				GameID: gameID.String(),
				Turn:   turn,
				Value:  value,
				Reason: verdict.String(),
				Game:   view,
			}), nil
		}

		if completed {
			s.metrics.RecordGameCompleted(ctx, topScore)
			s.logger.InfoContext(ctx, "Game completed",
				attr.GameID(gameID.String()),
				attr.Any("winners", view.Winners),
				attr.Int("top_score", topScore),
				attr.ExtractCorrelationID(ctx),
			)
		}

		return results.SuccessResult[RollAccepted, RollRejected](RollAccepted{
			GameID:        gameID.String(),
			Turn:          turn,
			Mark:          mark,
			GameCompleted: completed,
			Game:          view,
		}), nil
	})
}
