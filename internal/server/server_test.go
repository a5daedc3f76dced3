package server

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MyFarm_Go/internal/logger"
	"github.com/osse101/MyFarm_Go/internal/metrics"
	"github.com/osse101/MyFarm_Go/internal/testing/leaktest"
)

type stubProbe struct{ active bool }

func (p stubProbe) Active() bool { return p.active }

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Routes(t *testing.T) {
	r := NewRouter(stubProbe{active: true})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{PathHealthz, http.StatusOK, `"status":"ok"`},
		{PathReadyz, http.StatusOK, `"status":"ok"`},
		{PathVersion, http.StatusOK, `"go_version"`},
		{"/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(t, r, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRouter_ReadyzWithoutGame(t *testing.T) {
	w := serve(t, NewRouter(stubProbe{}), PathReadyz)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_MetricsExposesRequestCounters(t *testing.T) {
	r := NewRouter(stubProbe{active: true})
	serve(t, r, PathHealthz)

	w := serve(t, r, PathMetrics)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), "http_requests_in_flight")
}

func countSeries(c prometheus.Collector) int {
	ch := make(chan prometheus.Metric, 4096)
	c.Collect(ch)
	close(ch)
	return len(ch)
}

func TestRouter_UnknownPathsDoNotGrowMetrics(t *testing.T) {
	r := NewRouter(nil)
	serve(t, r, "/warmup")
	before := countSeries(metrics.HTTPRequestsTotal)

	for i := 0; i < 50; i++ {
		w := serve(t, r, fmt.Sprintf("/scan-%d", i))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, before, countSeries(metrics.HTTPRequestsTotal))

	body := serve(t, r, PathMetrics).Body.String()
	assert.Contains(t, body, `route="unmatched"`)
	assert.NotContains(t, body, "scan-")
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := serve(t, h, "/")

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueNoReferrer, w.Header().Get(HeaderReferrerPolicy))
}

func TestLoggingMiddleware(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitLoggerWithWriter(logger.Config{Level: "debug", Format: "json"}, &buf)

	var sawRequestID bool
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawRequestID = logger.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("logs and tags requests", func(t *testing.T) {
		buf.Reset()
		w := serve(t, h, PathVersion)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.True(t, sawRequestID)
		assert.Contains(t, buf.String(), LogMsgRequestCompleted)
		assert.Contains(t, buf.String(), `"status":418`)
	})

	t.Run("skips probe paths", func(t *testing.T) {
		buf.Reset()
		sawRequestID = false
		serve(t, h, PathHealthz)

		assert.False(t, sawRequestID)
		assert.Empty(t, buf.String())
	})
}

func TestServer_StartStop(t *testing.T) {
	leaks := leaktest.NewGoroutineChecker(t)
	s := NewServer("127.0.0.1:0", stubProbe{})
	assert.Equal(t, "127.0.0.1:0", s.Addr())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	// Shutdown may land before ListenAndServe; either way Start must return
	time.Sleep(20 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	leaks.Check(0)
}
