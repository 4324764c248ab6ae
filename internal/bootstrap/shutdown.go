package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is implemented by the web server
type Stopper interface {
	Stop(ctx context.Context) error
}

// Shutdowner is implemented by background workers
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	Worker Shutdowner
}

// GracefulShutdown stops the web server, then the watch worker.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerStopFailed, "error", err)
		}
	}

	if components.Worker != nil {
		if err := components.Worker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerStopFailed, "error", err)
		}
	}

	slog.Info(LogMsgShutdownComplete)
}
