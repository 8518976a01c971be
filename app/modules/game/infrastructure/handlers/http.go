package gamehandlers

import (
	"encoding/json"
	"errors"
	"net/http"

	gameservice "github.com/Black-And-White-Club/bowling-bot/app/modules/game/application"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/handlerwrapper"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxBodyBytes bounds request bodies; the largest valid one is a five-name
// roster.
const maxBodyBytes = 4 << 10

// CreateGameRequest is the body of POST /api/games.
type CreateGameRequest struct {
	Players []string `json:"players"`
}

// SubmitRollRequest is the body of POST /api/games/{gameID}/rolls.
type SubmitRollRequest struct {
	Player int    `json:"player"`
	Frame  int    `json:"frame"`
	Roll   int    `json:"roll"`
	Value  string `json:"value"`
}

// SubmitRollResponse reports whether a roll was recorded. Game is the state
// after the submission, unchanged when the roll was rejected.
type SubmitRollResponse struct {
	Accepted bool             `json:"accepted"`
	Reason   string           `json:"reason,omitempty"`
	Mark     string           `json:"mark,omitempty"`
	Game     gamedto.GameView `json:"game"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *GameHandlers) HandleHTTPCreateGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateGameRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.service.CreateGame(ctx, req.Players)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if res.Failure != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: res.Failure.Reason})
		return
	}

	h.publish(ctx, []handlerwrapper.Result{gameStartedResult(*res.Success)})
	writeJSON(w, http.StatusCreated, res.Success)
}

func (h *GameHandlers) HandleHTTPListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.ListGames(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (h *GameHandlers) HandleHTTPGetGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := parseGameID(w, r)
	if !ok {
		return
	}

	view, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *GameHandlers) HandleHTTPSubmitRoll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gameID, ok := parseGameID(w, r)
	if !ok {
		return
	}

	var req SubmitRollRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	turn := gamedto.Turn{Player: req.Player, Frame: req.Frame, Roll: req.Roll}
	res, err := h.service.SubmitRoll(ctx, gameID, turn, req.Value)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.publish(ctx, rollResults(res))

	if res.Failure != nil {
		writeJSON(w, http.StatusOK, SubmitRollResponse{
			Accepted: false,
			Reason:   res.Failure.Reason,
			Game:     res.Failure.Game,
		})
		return
	}
	writeJSON(w, http.StatusOK, SubmitRollResponse{
		Accepted: true,
		Mark:     res.Success.Mark,
		Game:     res.Success.Game,
	})
}

func (h *GameHandlers) HandleHTTPDeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := parseGameID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteGame(r.Context(), gameID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandlers) HandleHTTPScorecard(w http.ResponseWriter, r *http.Request) {
	gameID, ok := parseGameID(w, r)
	if !ok {
		return
	}

	data, err := h.service.ExportScorecard(r.Context(), gameID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="scorecard-`+gameID.String()+`.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *GameHandlers) HandleHTTPScoreChart(w http.ResponseWriter, r *http.Request) {
	gameID, ok := parseGameID(w, r)
	if !ok {
		return
	}

	data, err := h.service.RenderScoreChart(r.Context(), gameID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func parseGameID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid game id"})
		return uuid.Nil, false
	}
	return gameID, true
}

func (h *GameHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, gameservice.ErrGameNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
	case errors.Is(err, gameservice.ErrRegistryFull):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "too many games in progress"})
	default:
		h.logger.ErrorContext(r.Context(), "Request failed",
			attr.String("path", r.URL.Path),
			attr.ExtractCorrelationID(r.Context()),
			attr.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
