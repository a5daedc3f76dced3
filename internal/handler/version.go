package handler

import (
	"net/http"
	"os"
	"runtime"

	"github.com/osse101/MyFarm_Go/internal/config"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// HandleVersion returns version information about the running binary
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   getVersionInfo(),
			GoVersion: runtime.Version(),
		})
	}
}

// Priority: build stamp, then environment, then "dev"
func getVersionInfo() string {
	if config.Version != "dev" && config.Version != "" {
		return config.Version
	}
	if envVersion := os.Getenv(EnvVersion); envVersion != "" {
		return envVersion
	}
	return "dev"
}
