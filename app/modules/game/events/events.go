// Package gameevents defines the topics and payloads exchanged on the event
// bus by the game module.
package gameevents

import (
	"time"

	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
)

// Topics.
const (
	// RollSubmitRequestedV1 is consumed: a presentation layer asks for a roll
	// to be recorded.
	RollSubmitRequestedV1 = "bowling.roll.submit.requested.v1"

	GameStartedV1   = "bowling.game.started.v1"
	RollRecordedV1  = "bowling.roll.recorded.v1"
	RollRejectedV1  = "bowling.roll.rejected.v1"
	GameCompletedV1 = "bowling.game.completed.v1"
)

// RollSubmitRequestedPayloadV1 addresses one ball of one game.
type RollSubmitRequestedPayloadV1 struct {
	GameID string       `json:"game_id"`
	Turn   gamedto.Turn `json:"turn"`
	Value  string       `json:"value"`
}

// GameStartedPayloadV1 announces a new game.
type GameStartedPayloadV1 struct {
	GameID    string    `json:"game_id"`
	Players   []string  `json:"players"`
	StartedAt time.Time `json:"started_at"`
}

// RollRecordedPayloadV1 reports an accepted roll and the resulting state.
type RollRecordedPayloadV1 struct {
	GameID string           `json:"game_id"`
	Turn   gamedto.Turn     `json:"turn"`
	Mark   string           `json:"mark"`
	Game   gamedto.GameView `json:"game"`
}

// RollRejectedPayloadV1 reports a roll that left the game unchanged.
type RollRejectedPayloadV1 struct {
	GameID string       `json:"game_id"`
	Turn   gamedto.Turn `json:"turn"`
	Value  string       `json:"value"`
	Reason string       `json:"reason"`
}

// GameCompletedPayloadV1 reports the final standings.
type GameCompletedPayloadV1 struct {
	GameID  string               `json:"game_id"`
	Winners []string             `json:"winners"`
	Tie     bool                 `json:"tie"`
	Players []gamedto.PlayerView `json:"players"`
}
