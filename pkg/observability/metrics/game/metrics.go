// Package gamemetrics records bowling game activity.
package gamemetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GameMetrics is implemented by the Prometheus recorder and NoOpMetrics.
type GameMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordGameStarted(ctx context.Context, players int)
	RecordRoll(ctx context.Context, verdict string)
	RecordGameCompleted(ctx context.Context, topScore int)
	RecordActiveGames(ctx context.Context, count int)
}

type prometheusMetrics struct {
	operationAttempts *prometheus.CounterVec
	operationSuccess  *prometheus.CounterVec
	operationFailure  *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	gamesStarted      prometheus.Counter
	playersPerGame    prometheus.Histogram
	rolls             *prometheus.CounterVec
	gamesCompleted    prometheus.Counter
	topScores         prometheus.Histogram
	activeGames       prometheus.Gauge
}

// NewPrometheusMetrics registers the game collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) (GameMetrics, error) {
	m := &prometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, []string{"operation"}),
		operationSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "operation_success_total",
			Help:      "Service operations that returned a success result.",
		}, []string{"operation"}),
		operationFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "operation_failure_total",
			Help:      "Service operations that errored or panicked.",
		}, []string{"operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"operation"}),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "started_total",
			Help:      "Games started.",
		}),
		playersPerGame: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "players",
			Help:      "Bowlers per started game.",
			Buckets:   prometheus.LinearBuckets(1, 1, 5),
		}),
		rolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "rolls_total",
			Help:      "Roll submissions by verdict.",
		}, []string{"verdict"}),
		gamesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "completed_total",
			Help:      "Games played to the last frame.",
		}),
		topScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "top_score",
			Help:      "Highest total of each completed game.",
			Buckets:   prometheus.LinearBuckets(0, 30, 11),
		}),
		activeGames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "active",
			Help:      "Games currently held in memory.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.operationAttempts, m.operationSuccess, m.operationFailure, m.operationDuration,
		m.gamesStarted, m.playersPerGame, m.rolls, m.gamesCompleted, m.topScores, m.activeGames,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.operationAttempts.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.operationSuccess.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.operationFailure.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *prometheusMetrics) RecordGameStarted(_ context.Context, players int) {
	m.gamesStarted.Inc()
	m.playersPerGame.Observe(float64(players))
}

func (m *prometheusMetrics) RecordRoll(_ context.Context, verdict string) {
	m.rolls.WithLabelValues(verdict).Inc()
}

func (m *prometheusMetrics) RecordGameCompleted(_ context.Context, topScore int) {
	m.gamesCompleted.Inc()
	m.topScores.Observe(float64(topScore))
}

func (m *prometheusMetrics) RecordActiveGames(_ context.Context, count int) {
	m.activeGames.Set(float64(count))
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordGameStarted(context.Context, int)                         {}
func (NoOpMetrics) RecordRoll(context.Context, string)                             {}
func (NoOpMetrics) RecordGameCompleted(context.Context, int)                       {}
func (NoOpMetrics) RecordActiveGames(context.Context, int)                         {}
