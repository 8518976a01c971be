// Package observability builds the logger, tracer and metrics shared by the
// modules.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	gamemetrics "github.com/Black-And-White-Club/bowling-bot/pkg/observability/metrics/game"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const ServiceName = "bowling-bot"

// Config selects how telemetry is emitted.
type Config struct {
	Environment      string
	LogLevel         string
	LogFormat        string
	MetricsEnabled   bool
	MetricsNamespace string
}

// Observability bundles the telemetry components handed to modules.
type Observability struct {
	Logger      *slog.Logger
	Tracer      trace.Tracer
	Registry    *prometheus.Registry // nil when metrics are disabled
	GameMetrics gamemetrics.GameMetrics
}

// Init builds the telemetry components writing logs to w. Spans go to the
// global otel tracer provider.
func Init(cfg Config, w io.Writer) (Observability, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return Observability{}, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	logger := slog.New(handler).With(
		slog.String("service", ServiceName),
		slog.String("environment", cfg.Environment),
	)

	obs := Observability{
		Logger:      logger,
		Tracer:      otel.Tracer(ServiceName),
		GameMetrics: gamemetrics.NoOpMetrics{},
	}

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m, err := gamemetrics.NewPrometheusMetrics(reg, cfg.MetricsNamespace)
		if err != nil {
			return Observability{}, fmt.Errorf("failed to register game metrics: %w", err)
		}
		obs.Registry = reg
		obs.GameMetrics = m
	}

	return obs, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
