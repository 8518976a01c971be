package gamehandlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	gameservice "github.com/Black-And-White-Club/bowling-bot/app/modules/game/application"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	gameevents "github.com/Black-And-White-Club/bowling-bot/app/modules/game/events"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/handlerwrapper"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/results"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestHandlers(svc gameservice.Service, pub *FakePublisher) *GameHandlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var publisher message.Publisher
	if pub != nil {
		publisher = pub
	}
	return NewGameHandlers(svc, publisher, logger, noop.NewTracerProvider().Tracer("test")).(*GameHandlers)
}

func TestHandleRollSubmitRequested(t *testing.T) {
	gameID := uuid.New()
	turn := gamedto.Turn{Player: 1, Frame: 9, Roll: 2}

	tests := []struct {
		name        string
		payload     *gameevents.RollSubmitRequestedPayloadV1
		setup       func(*FakeService)
		wantTopics  []string
		wantErr     bool
		checkResult func(t *testing.T, out []handlerwrapper.Result)
	}{
		{
			name:    "accepted roll",
			payload: &gameevents.RollSubmitRequestedPayloadV1{GameID: gameID.String(), Turn: turn, Value: "X"},
			setup: func(s *FakeService) {
				s.SubmitRollFunc = func(_ context.Context, id uuid.UUID, got gamedto.Turn, value string) (gameservice.SubmitRollResult, error) {
					assert.Equal(t, gameID, id)
					assert.Equal(t, turn, got)
					assert.Equal(t, "X", value)
					return results.SuccessResult[gameservice.RollAccepted, gameservice.RollRejected](gameservice.RollAccepted{
						GameID: id.String(),
						Turn:   got,
						Mark:   "X",
					}), nil
				}
			},
			wantTopics: []string{gameevents.RollRecordedV1},
			checkResult: func(t *testing.T, out []handlerwrapper.Result) {
				p, ok := out[0].Payload.(*gameevents.RollRecordedPayloadV1)
				require.True(t, ok)
				assert.Equal(t, "X", p.Mark)
				assert.Equal(t, gameID.String(), out[0].GameID)
			},
		},
		{
			name:    "final roll completes the game",
			payload: &gameevents.RollSubmitRequestedPayloadV1{GameID: gameID.String(), Turn: turn, Value: "5"},
			setup: func(s *FakeService) {
				s.SubmitRollFunc = func(_ context.Context, id uuid.UUID, got gamedto.Turn, _ string) (gameservice.SubmitRollResult, error) {
					return results.SuccessResult[gameservice.RollAccepted, gameservice.RollRejected](gameservice.RollAccepted{
						GameID:        id.String(),
						Turn:          got,
						Mark:          "5",
						GameCompleted: true,
						Game: gamedto.GameView{
							Complete: true,
							Winners:  []string{"Ann", "Bo"},
							Tie:      true,
						},
					}), nil
				}
			},
			wantTopics: []string{gameevents.RollRecordedV1, gameevents.GameCompletedV1},
			checkResult: func(t *testing.T, out []handlerwrapper.Result) {
				p, ok := out[1].Payload.(*gameevents.GameCompletedPayloadV1)
				require.True(t, ok)
				assert.True(t, p.Tie)
				assert.Equal(t, []string{"Ann", "Bo"}, p.Winners)
			},
		},
		{
			name:    "rule rejection",
			payload: &gameevents.RollSubmitRequestedPayloadV1{GameID: gameID.String(), Turn: turn, Value: "/"},
			setup: func(s *FakeService) {
				s.SubmitRollFunc = func(_ context.Context, id uuid.UUID, got gamedto.Turn, value string) (gameservice.SubmitRollResult, error) {
					return results.FailureResult[gameservice.RollAccepted](gameservice.RollRejected{
						GameID: id.String(),
						Turn:   got,
						Value:  value,
						Reason: "illegal",
					}), nil
				}
			},
			wantTopics: []string{gameevents.RollRejectedV1},
			checkResult: func(t *testing.T, out []handlerwrapper.Result) {
				want := &gameevents.RollRejectedPayloadV1{
					GameID: gameID.String(),
					Turn:   turn,
					Value:  "/",
					Reason: "illegal",
				}
				if diff := cmp.Diff(want, out[0].Payload); diff != "" {
					t.Errorf("payload mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:       "invalid game id",
			payload:    &gameevents.RollSubmitRequestedPayloadV1{GameID: "lane-7", Turn: turn, Value: "5"},
			wantTopics: []string{gameevents.RollRejectedV1},
			checkResult: func(t *testing.T, out []handlerwrapper.Result) {
				p := out[0].Payload.(*gameevents.RollRejectedPayloadV1)
				assert.Equal(t, ReasonUnknownGame, p.Reason)
			},
		},
		{
			name:    "unknown game",
			payload: &gameevents.RollSubmitRequestedPayloadV1{GameID: gameID.String(), Turn: turn, Value: "5"},
			setup: func(s *FakeService) {
				s.SubmitRollFunc = func(context.Context, uuid.UUID, gamedto.Turn, string) (gameservice.SubmitRollResult, error) {
					return gameservice.SubmitRollResult{}, gameservice.ErrGameNotFound
				}
			},
			wantTopics: []string{gameevents.RollRejectedV1},
		},
		{
			name:    "infrastructure error is returned for retry",
			payload: &gameevents.RollSubmitRequestedPayloadV1{GameID: gameID.String(), Turn: turn, Value: "5"},
			setup: func(s *FakeService) {
				s.SubmitRollFunc = func(context.Context, uuid.UUID, gamedto.Turn, string) (gameservice.SubmitRollResult, error) {
					return gameservice.SubmitRollResult{}, errors.New("registry offline")
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := newTestHandlers(svc, nil)

			out, err := h.HandleRollSubmitRequested(context.Background(), tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)

			topics := make([]string, len(out))
			for i, r := range out {
				topics[i] = r.Topic
			}
			assert.Equal(t, tt.wantTopics, topics)
			if tt.checkResult != nil {
				tt.checkResult(t, out)
			}
		})
	}
}
