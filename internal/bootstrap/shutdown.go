package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/osse101/MyFarm_Go/internal/server"
)

// ShutdownComponents holds everything that needs an orderly stop. Nil fields
// are skipped.
type ShutdownComponents struct {
	Server  *server.Server
	LogFile *os.File
}

// GracefulShutdown stops the ops server, then closes the log file last so the
// shutdown itself is still logged.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShutdownComplete)

	if components.LogFile != nil {
		if err := components.LogFile.Close(); err != nil {
			slog.Error(LogMsgLogFileCloseFailed, "error", err)
		}
	}
}
