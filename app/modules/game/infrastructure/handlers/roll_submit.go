package gamehandlers

import (
	"context"
	"errors"

	gameservice "github.com/Black-And-White-Club/bowling-bot/app/modules/game/application"
	gameevents "github.com/Black-And-White-Club/bowling-bot/app/modules/game/events"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/handlerwrapper"
	"github.com/google/uuid"
)

// Reasons reported for requests that never reach a game.
const (
	ReasonUnknownGame = "unknown_game"
)

// HandleRollSubmitRequested records a roll and reports the outcome. Requests
// for a game that does not exist are answered with a rejection instead of an
// error so they are not redelivered.
func (h *GameHandlers) HandleRollSubmitRequested(
	ctx context.Context,
	payload *gameevents.RollSubmitRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	rejected := func(reason string) []handlerwrapper.Result {
		return []handlerwrapper.Result{{
			Topic:  gameevents.RollRejectedV1,
			GameID: payload.GameID,
			Payload: &gameevents.RollRejectedPayloadV1{
				GameID: payload.GameID,
				Turn:   payload.Turn,
				Value:  payload.Value,
				Reason: reason,
			},
		}}
	}

	gameID, err := uuid.Parse(payload.GameID)
	if err != nil {
		h.logger.WarnContext(ctx, "Roll requested for invalid game id",
			attr.String("game_id", payload.GameID),
			attr.ExtractCorrelationID(ctx),
		)
		return rejected(ReasonUnknownGame), nil
	}

	res, err := h.service.SubmitRoll(ctx, gameID, payload.Turn, payload.Value)
	if errors.Is(err, gameservice.ErrGameNotFound) {
		return rejected(ReasonUnknownGame), nil
	}
	if err != nil {
		return nil, err
	}

	return rollResults(res), nil
}
