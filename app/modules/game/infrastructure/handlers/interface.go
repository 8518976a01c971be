package gamehandlers

import (
	"context"
	"net/http"

	gameevents "github.com/Black-And-White-Club/bowling-bot/app/modules/game/events"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/handlerwrapper"
)

// Handlers defines the game module's event and HTTP handlers.
type Handlers interface {
	// --- EVENTS ---

	// HandleRollSubmitRequested records a roll requested over the bus.
	HandleRollSubmitRequested(ctx context.Context, payload *gameevents.RollSubmitRequestedPayloadV1) ([]handlerwrapper.Result, error)

	// --- HTTP ---

	HandleHTTPCreateGame(w http.ResponseWriter, r *http.Request)
	HandleHTTPListGames(w http.ResponseWriter, r *http.Request)
	HandleHTTPGetGame(w http.ResponseWriter, r *http.Request)
	HandleHTTPSubmitRoll(w http.ResponseWriter, r *http.Request)
	HandleHTTPDeleteGame(w http.ResponseWriter, r *http.Request)
	HandleHTTPScorecard(w http.ResponseWriter, r *http.Request)
	HandleHTTPScoreChart(w http.ResponseWriter, r *http.Request)
}
