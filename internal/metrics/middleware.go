package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouteUnmatched labels requests that hit no registered route. Raw paths are
// never used as labels, so scanning the ops port cannot grow the series set.
const RouteUnmatched = "unmatched"

// MethodOther labels any request method outside the standard set
const MethodOther = "other"

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// Middleware records request count, latency, and in-flight gauge for the ops
// router. It must run inside a chi router so the route pattern is known.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		method, route := methodLabel(r), routeLabel(r)

		HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel is the matched chi pattern, read after routing has run
func routeLabel(r *http.Request) string {
	if pattern := chi.RouteContext(r.Context()).RoutePattern(); pattern != "" {
		return pattern
	}
	return RouteUnmatched
}

func methodLabel(r *http.Request) string {
	if knownMethods[r.Method] {
		return r.Method
	}
	return MethodOther
}
