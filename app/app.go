package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/Black-And-White-Club/bowling-bot/app/modules/game"
	"github.com/Black-And-White-Club/bowling-bot/config"
	"github.com/Black-And-White-Club/bowling-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
)

// App wires the modules to the event bus and the HTTP server.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	EventBus      eventbus.EventBus
	Router        *message.Router
	HTTPRouter    chi.Router
	GameModule    *game.Module

	server *http.Server
	wg     sync.WaitGroup
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config, obs observability.Observability) (*App, error) {
	logger := obs.Logger

	bus := eventbus.NewInProcessEventBus(logger, cfg.EventBus.Buffer)

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}

	httpRouter := newHTTPRouter(cfg.HTTP, obs)

	gameModule, err := game.NewGameModule(ctx, cfg, obs, bus, router, httpRouter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize game module: %w", err)
	}

	return &App{
		Config:        cfg,
		Observability: obs,
		EventBus:      bus,
		Router:        router,
		HTTPRouter:    httpRouter,
		GameModule:    gameModule,
		server: &http.Server{
			Addr:         cfg.HTTP.Address,
			Handler:      httpRouter,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		},
	}, nil
}

// Close releases the router and the event bus.
func (app *App) Close() error {
	var errs []error
	if err := app.GameModule.Close(); err != nil {
		errs = append(errs, fmt.Errorf("game module: %w", err))
	}
	if err := app.Router.Close(); err != nil {
		errs = append(errs, fmt.Errorf("message router: %w", err))
	}
	if err := app.EventBus.Close(); err != nil {
		errs = append(errs, fmt.Errorf("event bus: %w", err))
	}
	return errors.Join(errs...)
}
