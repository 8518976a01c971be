package game

import (
	"context"
	"fmt"
	"sync"

	gameservice "github.com/Black-And-White-Club/bowling-bot/app/modules/game/application"
	gamehandlers "github.com/Black-And-White-Club/bowling-bot/app/modules/game/infrastructure/handlers"
	gamedb "github.com/Black-And-White-Club/bowling-bot/app/modules/game/infrastructure/repositories"
	gamerouter "github.com/Black-And-White-Club/bowling-bot/app/modules/game/infrastructure/router"
	"github.com/Black-And-White-Club/bowling-bot/config"
	"github.com/Black-And-White-Club/bowling-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Module represents the game module.
type Module struct {
	EventBus      eventbus.EventBus
	GameService   gameservice.Service
	GameRouter    *gamerouter.GameRouter
	config        *config.Config
	observability observability.Observability

	mu         sync.Mutex
	cancelFunc context.CancelFunc
}

// NewGameModule builds the game module, registers its message handlers on
// router and, when httpRouter is not nil, mounts its HTTP API.
func NewGameModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	router *message.Router,
	httpRouter chi.Router,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer

	logger.InfoContext(ctx, "game.NewGameModule called")

	repo := gamedb.NewMemoryRepository(cfg.Game.MaxGames, cfg.Game.IdleTTL)
	service := gameservice.NewGameService(repo, logger, obs.GameMetrics, tracer)
	handlers := gamehandlers.NewGameHandlers(service, eventBus, logger, tracer)

	var registry prometheus.Registerer
	if obs.Registry != nil {
		registry = obs.Registry
	}
	gameRouter := gamerouter.NewGameRouter(logger, router, eventBus, tracer, registry)
	if err := gameRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure game router: %w", err)
	}

	if httpRouter != nil {
		var limiter *gamehandlers.IPRateLimiter
		if cfg.HTTP.RateLimit > 0 {
			limiter = gamehandlers.NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst)
		}
		gamehandlers.RegisterRoutes(httpRouter, handlers, limiter)
	}

	return &Module{
		EventBus:      eventBus,
		GameService:   service,
		GameRouter:    gameRouter,
		config:        cfg,
		observability: obs,
	}, nil
}

// Run blocks until ctx is canceled or the module is closed.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting game module")

	ctx, cancel := context.WithCancel(ctx)
	m.mu.Lock()
	m.cancelFunc = cancel
	m.mu.Unlock()
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Game module goroutine stopped")
}

// Close stops the game module.
func (m *Module) Close() error {
	logger := m.observability.Logger
	logger.Info("Stopping game module")

	m.mu.Lock()
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.mu.Unlock()

	logger.Info("Game module stopped")
	return nil
}
