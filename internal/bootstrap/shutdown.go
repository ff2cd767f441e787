package bootstrap

import (
	"context"
	"log/slog"
)

// HTTPServer is the operational HTTP server
type HTTPServer interface {
	Stop(ctx context.Context) error
}

// Gateway is the chat gateway session
type Gateway interface {
	Stop() error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     HTTPServer
	Gateway    Gateway
	CloseStore CloseFunc
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting health checks and scrapes)
// 2. Discord gateway (stop receiving commands)
// 3. Item store (release connections once no handler can use them)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
// Nil components are skipped.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Gateway != nil {
		if err := components.Gateway.Stop(); err != nil {
			slog.Error(LogMsgGatewayCloseFailed, "error", err)
		}
	}

	if components.CloseStore != nil {
		if err := components.CloseStore(ctx); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgShutdownComplete)
}
