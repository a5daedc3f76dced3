package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/MyFarm_Go/internal/bootstrap"
	"github.com/osse101/MyFarm_Go/internal/config"
	"github.com/osse101/MyFarm_Go/internal/console"
	"github.com/osse101/MyFarm_Go/internal/logger"
)

func main() {
	// Until the file logger is up, errors go to stderr
	logger.InitLogger(logger.ConsoleConfig())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}

	os.Exit(run(cfg, logFile))
}

// run plays the game and returns the process exit code
func run(cfg *config.Config, logFile *os.File) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		return 1
	}

	app := console.NewApp(os.Stdin, os.Stdout, console.SessionFactory(bootstrap.NewGameFactory(cfg, bus)))
	srv := bootstrap.StartOpsServer(cfg, app)

	// The prompt loop blocks on stdin, so a signal has to be able to win the race
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	code := 0
	select {
	case err := <-done:
		if err != nil {
			slog.Error("Game exited with error", "error", err)
			code = 1
		}
	case <-ctx.Done():
		slog.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		LogFile: logFile,
	})
	return code
}
