package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Black-And-White-Club/bowling-bot/pkg/observability/attr"
)

// Start runs the message router, the modules and the HTTP server until ctx is
// canceled, then shuts everything down.
func (app *App) Start(ctx context.Context) error {
	logger := app.Observability.Logger

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	routerErr := make(chan error, 1)
	go func() {
		routerErr <- app.Router.Run(runCtx)
	}()
	select {
	case <-app.Router.Running():
	case err := <-routerErr:
		return fmt.Errorf("message router stopped: %w", err)
	}

	app.wg.Add(1)
	go app.GameModule.Run(runCtx, &app.wg)

	ln, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		stop()
		return errors.Join(fmt.Errorf("failed to listen on %s: %w", app.server.Addr, err), app.WaitForShutdown(ctx))
	}
	logger.InfoContext(ctx, "Starting HTTP server", attr.String("address", ln.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		if err := app.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			logger.ErrorContext(ctx, "HTTP server failed", attr.Error(err))
		}
	}

	stop()
	return app.WaitForShutdown(ctx)
}
