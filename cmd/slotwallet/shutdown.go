package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/osse101/slotwallet/internal/server"
)

const shutdownTimeout = 5 * time.Second

// gracefulShutdown stops the metrics server if one was started.
// Errors are logged and do not abort the shutdown.
func gracefulShutdown(srv *server.Server) {
	if srv == nil {
		return
	}

	slog.Info("Shutting down metrics server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Metrics server forced to shutdown", "error", err)
	}
}
