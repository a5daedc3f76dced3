package bootstrap

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/MyFarm_Go/internal/config"
	"github.com/osse101/MyFarm_Go/internal/handler"
	"github.com/osse101/MyFarm_Go/internal/server"
)

// StartOpsServer serves health, version, and metrics on cfg.MetricsAddr in the
// background. It returns nil when no address is configured.
func StartOpsServer(cfg *config.Config, probe handler.SessionProbe) *server.Server {
	if cfg.MetricsAddr == "" {
		slog.Debug(LogMsgOpsServerDisabled)
		return nil
	}

	srv := server.NewServer(cfg.MetricsAddr, probe)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgOpsServerFailed, "addr", srv.Addr(), "error", err)
		}
	}()
	return srv
}
