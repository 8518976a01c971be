package gameservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gamedb "github.com/Black-And-White-Club/bowling-bot/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
	gamemetrics "github.com/Black-And-White-Club/bowling-bot/pkg/observability/metrics/game"
	"github.com/Black-And-White-Club/bowling-bot/pkg/utils/results"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GameService implements the Service interface.
type GameService struct {
	repo    gamedb.Repository
	logger  *slog.Logger
	metrics gamemetrics.GameMetrics
	tracer  trace.Tracer
}

// NewGameService creates a new GameService.
func NewGameService(
	repo gamedb.Repository,
	logger *slog.Logger,
	metrics gamemetrics.GameMetrics,
	tracer trace.Tracer,
) *GameService {
	return &GameService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

var _ Service = (*GameService)(nil)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *GameService,
	ctx context.Context,
	operationName string,
	gameID string,
	op func(ctx context.Context) (results.OperationResult[S, F], error),
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("game_id", gameID),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.DebugContext(ctx, operationName+" triggered",
		attr.String("operation", operationName),
		attr.GameID(gameID),
		attr.ExtractCorrelationID(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.GameID(gameID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		level := slog.LevelError
		if errors.Is(err, ErrGameNotFound) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.GameID(gameID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		span.SetStatus(codes.Error, wrappedErr.Error())
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.InfoContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.GameID(gameID),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.logger.DebugContext(ctx, operationName+" completed successfully",
			attr.String("operation", operationName),
			attr.GameID(gameID),
			attr.ExtractCorrelationID(ctx),
		)
		s.metrics.RecordOperationSuccess(ctx, operationName)
	}

	return result, nil
}

// withTelemetryValue runs an operation that has no failure payload through
// withTelemetry.
func withTelemetryValue[S any](
	s *GameService,
	ctx context.Context,
	operationName string,
	gameID string,
	op func(ctx context.Context) (S, error),
) (S, error) {
	result, err := withTelemetry(s, ctx, operationName, gameID,
		func(ctx context.Context) (results.OperationResult[S, struct{}], error) {
			v, err := op(ctx)
			if err != nil {
				return results.OperationResult[S, struct{}]{}, err
			}
			return results.SuccessResult[S, struct{}](v), nil
		})
	if err != nil || result.Success == nil {
		var zero S
		return zero, err
	}
	return *result.Success, nil
}

// record looks a game up, translating the registry's not-found error.
func (s *GameService) record(ctx context.Context, gameID uuid.UUID) (*gamedb.Record, error) {
	rec, err := s.repo.Get(ctx, gameID)
	if errors.Is(err, gamedb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
