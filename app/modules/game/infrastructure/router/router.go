package gamerouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	gameevents "github.com/Black-And-White-Club/bowling-bot/app/modules/game/events"
	gamehandlers "github.com/Black-And-White-Club/bowling-bot/app/modules/game/infrastructure/handlers"
	"github.com/Black-And-White-Club/bowling-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

type GameRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	bus            eventbus.EventBus
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewGameRouter creates a router that consumes and publishes on bus.
// registry may be nil to skip router metrics.
func NewGameRouter(
	logger *slog.Logger,
	router *message.Router,
	bus eventbus.EventBus,
	tracer trace.Tracer,
	registry prometheus.Registerer,
) *GameRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if registry != nil && !inTestEnv {
		b := metrics.NewPrometheusMetricsBuilder(registry, "", "")
		metricsBuilder = &b
	}

	return &GameRouter{
		logger:         logger,
		Router:         router,
		bus:            bus,
		tracer:         tracer,
		metricsBuilder: metricsBuilder,
		metricsEnabled: metricsBuilder != nil,
	}
}

var _ Router = (*GameRouter)(nil)

// Configure adds middleware and registers the game handlers.
func (r *GameRouter) Configure(ctx context.Context, handlers gamehandlers.Handlers) error {
	if r.metricsEnabled {
		r.logger.InfoContext(ctx, "Adding Prometheus router metrics middleware")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	registerHandler(r, gameevents.RollSubmitRequestedV1, handlers.HandleRollSubmitRequested)
	return nil
}

// registerHandler subscribes a typed handler to topic. Each message it
// returns is published to the topic named in its metadata.
func registerHandler[T any](
	r *GameRouter,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "game." + topic
	wrapped := handlerwrapper.WrapTransformingTyped(handlerName, r.logger, r.tracer, handler)

	r.Router.AddHandler(
		handlerName,
		topic,
		r.bus,
		"",
		nil,
		func(msg *message.Message) ([]*message.Message, error) {
			out, err := wrapped(msg)
			if err != nil {
				return nil, err
			}
			for _, m := range out {
				publishTopic := m.Metadata.Get(eventbus.MetadataTopic)
				if publishTopic == "" {
					r.logger.Error("router failed to resolve publish topic - MESSAGE DROPPED",
						attr.String("handler", handlerName),
						attr.String("msg_uuid", m.UUID),
						attr.CorrelationIDFromMsg(m),
					)
					continue
				}
				if err := r.bus.Publish(publishTopic, m); err != nil {
					return nil, fmt.Errorf("failed to publish to %s: %w", publishTopic, err)
				}
			}
			return nil, nil
		},
	)
}

func (r *GameRouter) Close() error {
	return r.Router.Close()
}
