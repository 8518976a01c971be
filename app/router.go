package app

import (
	"net/http"

	"github.com/Black-And-White-Club/bowling-bot/config"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newHTTPRouter builds the root HTTP router with the routes shared by every
// module. Modules mount their own routes on it.
func newHTTPRouter(cfg config.HTTPConfig, obs observability.Observability) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Correlation-ID", "Content-Disposition"},
		MaxAge:         60 * 15,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if obs.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{Registry: obs.Registry}))
	}
	return r
}
