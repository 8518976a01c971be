package gamehandlers

import (
	"context"
	"log/slog"
	"time"

	gameservice "github.com/Black-And-White-Club/bowling-bot/app/modules/game/application"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	gameevents "github.com/Black-And-White-Club/bowling-bot/app/modules/game/events"
	"github.com/Black-And-White-Club/bowling-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// GameHandlers implements the Handlers interface.
type GameHandlers struct {
	service   gameservice.Service
	publisher message.Publisher
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewGameHandlers creates a new GameHandlers. publisher receives the events
// produced by HTTP requests; it may be nil.
func NewGameHandlers(
	service gameservice.Service,
	publisher message.Publisher,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &GameHandlers{
		service:   service,
		publisher: publisher,
		logger:    logger,
		tracer:    tracer,
	}
}

// rollResults turns the outcome of a submission into events.
func rollResults(res gameservice.SubmitRollResult) []handlerwrapper.Result {
	if res.Failure != nil {
		f := res.Failure
		return []handlerwrapper.Result{{
			Topic:  gameevents.RollRejectedV1,
			GameID: f.GameID,
			Payload: &gameevents.RollRejectedPayloadV1{
				GameID: f.GameID,
				Turn:   f.Turn,
				Value:  f.Value,
				Reason: f.Reason,
			},
		}}
	}
	if res.Success == nil {
		return nil
	}

	s := res.Success
	out := []handlerwrapper.Result{{
		Topic:  gameevents.RollRecordedV1,
		GameID: s.GameID,
		Payload: &gameevents.RollRecordedPayloadV1{
			GameID: s.GameID,
			Turn:   s.Turn,
			Mark:   s.Mark,
			Game:   s.Game,
		},
	}}
	if s.GameCompleted {
		out = append(out, handlerwrapper.Result{
			Topic:  gameevents.GameCompletedV1,
			GameID: s.GameID,
			Payload: &gameevents.GameCompletedPayloadV1{
				GameID:  s.GameID,
				Winners: s.Game.Winners,
				Tie:     s.Game.Tie,
				Players: s.Game.Players,
			},
		})
	}
	return out
}

func gameStartedResult(view gamedto.GameView) handlerwrapper.Result {
	names := make([]string, len(view.Players))
	for i, p := range view.Players {
		names[i] = p.Name
	}
	return handlerwrapper.Result{
		Topic:  gameevents.GameStartedV1,
		GameID: view.ID,
		Payload: &gameevents.GameStartedPayloadV1{
			GameID:    view.ID,
			Players:   names,
			StartedAt: view.CreatedAt.UTC().Truncate(time.Millisecond),
		},
	}
}

// publish sends results produced outside the message router. Publishing is
// best effort: a failed publish is logged and does not fail the request.
func (h *GameHandlers) publish(ctx context.Context, results []handlerwrapper.Result) {
	if h.publisher == nil {
		return
	}
	correlationID := attr.CorrelationID(ctx)
	for _, r := range results {
		if err := eventbus.PublishEvent(h.publisher, r.Topic, r.GameID, correlationID, r.Payload); err != nil {
			h.logger.ErrorContext(ctx, "Failed to publish event",
				attr.String("topic", r.Topic),
				attr.GameID(r.GameID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
		}
	}
}
