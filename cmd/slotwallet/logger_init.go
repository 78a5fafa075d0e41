package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/osse101/slotwallet/internal/config"
	"github.com/osse101/slotwallet/internal/logger"
)

// initLogger writes logs to stderr so they never interleave with console replies
func initLogger(cfg *config.Config) *slog.Logger {
	return logger.InitLoggerWithWriter(cfg.LoggerConfig(), os.Stderr)
}

// sessionContext tags every log line of this run with one session id
func sessionContext() context.Context {
	return logger.WithSessionID(context.Background(), logger.GenerateRequestID())
}
