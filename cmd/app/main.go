package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/DropsMiner_Go/internal/bootstrap"
	"github.com/osse101/DropsMiner_Go/internal/config"
	"github.com/osse101/DropsMiner_Go/internal/logger"
	"github.com/osse101/DropsMiner_Go/internal/miner"
	"github.com/osse101/DropsMiner_Go/internal/server"
	"github.com/osse101/DropsMiner_Go/internal/worker"
)

// @title Drops Miner API
// @version 1.0
// @description Read-only status endpoints of the drops miner web dashboard.
// @BasePath /
func main() {
	os.Exit(run(shutdownSignal()))
}

// run wires the process and blocks until stop fires. It returns the exit code.
func run(stop <-chan os.Signal) int {
	cfg, err := config.Load()
	if err != nil {
		logger.InitLogger(logger.DefaultConfig())
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		initLogger(cfg)
		slog.Warn("File logging unavailable, logging to stdout only", "error", err)
	} else {
		defer logFile.Close()
	}

	warnings, _ := cfg.ValidateWithWarnings()
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	tracker := miner.NewTracker()

	watcher := worker.NewWatchWorker(tracker, worker.WatchOptions{
		SessionFile: cfg.SessionFile,
		Interval:    cfg.WatchInterval,
		AutoClaim:   cfg.AutoClaim,
	})

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		WebDir:             cfg.WebDir,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		TrustedProxies:     cfg.TrustedProxies,
	}, tracker, tracker)

	if err := srv.Start(); err != nil {
		slog.Error("Failed to start web server", "error", err)
		return 1
	}

	if err := watcher.Start(context.Background()); err != nil {
		slog.Error("Failed to start watch worker", "error", err)
		shutdown(cfg, srv, watcher)
		return 1
	}

	<-stop

	shutdown(cfg, srv, watcher)
	return 0
}

func shutdownSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(cfg *config.Config, srv *server.Server, watcher *worker.WatchWorker) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		Worker: watcher,
	})
}
