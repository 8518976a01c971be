package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
)

// NotifyShutdown returns a context canceled on SIGINT or SIGTERM.
func NotifyShutdown(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// WaitForShutdown drains the HTTP server, waits for the modules and closes the
// router and bus. In-flight requests get the configured shutdown timeout.
func (app *App) WaitForShutdown(ctx context.Context) error {
	logger := app.Observability.Logger
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.Config.HTTP.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", attr.Error(err))
		errs = append(errs, err)
	}

	if err := app.Close(); err != nil {
		errs = append(errs, err)
	}
	app.wg.Wait()

	logger.Info("Application shut down gracefully")
	return errors.Join(errs...)
}
