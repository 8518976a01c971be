package gamehandlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RegisterRoutes mounts the game API under /api/games. limiter may be nil
// to disable rate limiting.
func RegisterRoutes(r chi.Router, h Handlers, limiter *IPRateLimiter) {
	r.Route("/api/games", func(r chi.Router) {
		r.Use(middleware.RequestID)
		r.Use(CorrelationIDMiddleware)
		if limiter != nil {
			r.Use(RateLimitMiddleware(limiter))
		}

		r.Post("/", h.HandleHTTPCreateGame)
		r.Get("/", h.HandleHTTPListGames)

		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", h.HandleHTTPGetGame)
			r.Delete("/", h.HandleHTTPDeleteGame)
			r.Post("/rolls", h.HandleHTTPSubmitRoll)
			r.Get("/scorecard.xlsx", h.HandleHTTPScorecard)
			r.Get("/chart.png", h.HandleHTTPScoreChart)
		})
	})
}
