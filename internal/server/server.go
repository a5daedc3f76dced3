package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/MyFarm_Go/internal/handler"
	"github.com/osse101/MyFarm_Go/internal/metrics"
)

// Server is the local ops listener. It serves health, version, and Prometheus
// metrics and never touches game state.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server listening on addr
func NewServer(addr string, probe handler.SessionProbe) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(probe),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the ops routes with their middleware stack
func NewRouter(probe handler.SessionProbe) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(probe))
	r.Get(PathVersion, handler.HandleVersion())
	r.Handle(PathMetrics, promhttp.Handler())

	return r
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start blocks serving requests until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
