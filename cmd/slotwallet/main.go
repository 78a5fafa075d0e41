package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/slotwallet/internal/config"
	"github.com/osse101/slotwallet/internal/console"
	"github.com/osse101/slotwallet/internal/server"
	"github.com/osse101/slotwallet/internal/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	log := initLogger(cfg)
	log.Info("Starting slot wallet",
		"environment", cfg.Environment,
		"rules_file", cfg.RulesFile,
		"metrics_addr", cfg.MetricsAddr)

	app, err := buildComponents(cfg, log)
	if err != nil {
		log.Error("Failed to start", "error", err)
		return 1
	}

	var srv *server.Server
	if cfg.MetricsAddr != "" {
		srv = server.NewServer(cfg.MetricsAddr, cfg.ServiceName, cfg.Version, app.service)
		go func() {
			if err := srv.Start(); err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}
	defer gracefulShutdown(srv)

	ctx, stop := signal.NotifyContext(sessionContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- console.NewApp(os.Stdin, os.Stdout, app.service).Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error("Console session failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		// stdin reads cannot be interrupted; leave the reader goroutine behind
		log.Info("Received shutdown signal")
	}

	log.Info("Final balance", "balance", utils.FormatMoney(app.wallet.Balance()))
	return 0
}

