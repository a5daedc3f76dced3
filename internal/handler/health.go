package handler

import (
	"log/slog"
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SessionProbe reports whether a game is currently running
type SessionProbe interface {
	Active() bool
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready while a game session is live
func HandleReadyz(probe SessionProbe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if probe == nil || !probe.Active() {
			slog.Debug(LogMsgReadinessFailed)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: ErrMsgNoSession,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
