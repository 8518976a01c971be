package gameservice

import (
	"context"

	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/results"
	"github.com/google/uuid"
)

// CreateGameFailure explains why a roster was refused.
type CreateGameFailure struct {
	Reason string `json:"reason"`
}

// RollAccepted describes a recorded roll. Mark is the roll as stored, so a
// numeric ball that cleared the rack comes back as "/".
type RollAccepted struct {
	GameID        string           `json:"game_id"`
	Turn          gamedto.Turn     `json:"turn"`
	Mark          string           `json:"mark"`
	GameCompleted bool             `json:"game_completed"`
	Game          gamedto.GameView `json:"game"`
}

// RollRejected describes a submission that left the game unchanged.
type RollRejected struct {
	GameID string           `json:"game_id"`
	Turn   gamedto.Turn     `json:"turn"`
	Value  string           `json:"value"`
	Reason string           `json:"reason"`
	Game   gamedto.GameView `json:"game"`
}

type (
	CreateGameResult = results.OperationResult[gamedto.GameView, CreateGameFailure]
	SubmitRollResult = results.OperationResult[RollAccepted, RollRejected]
)

// Service is the bowling game service.
type Service interface {
	// CreateGame starts a game for one to five named bowlers.
	CreateGame(ctx context.Context, names []string) (CreateGameResult, error)

	// SubmitRoll records value at turn. Rolls that break the rules or address
	// the wrong turn come back as a failure result with the game unchanged.
	SubmitRoll(ctx context.Context, gameID uuid.UUID, turn gamedto.Turn, value string) (SubmitRollResult, error)

	GetGame(ctx context.Context, gameID uuid.UUID) (gamedto.GameView, error)
	ListGames(ctx context.Context) ([]gamedto.GameSummary, error)
	DeleteGame(ctx context.Context, gameID uuid.UUID) error

	// ExportScorecard renders the score sheet as an XLSX workbook.
	ExportScorecard(ctx context.Context, gameID uuid.UUID) ([]byte, error)

	// RenderScoreChart renders each bowler's running score as a PNG.
	RenderScoreChart(ctx context.Context, gameID uuid.UUID) ([]byte, error)
}
