package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MyFarm_Go/internal/config"
)

func setVersion(t *testing.T, v string) {
	t.Helper()
	old := config.Version
	config.Version = v
	t.Cleanup(func() { config.Version = old })
}

func TestHandleVersion(t *testing.T) {
	setVersion(t, "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestGetVersionInfo(t *testing.T) {
	t.Run("build stamp wins", func(t *testing.T) {
		setVersion(t, "2.0.0")
		t.Setenv(EnvVersion, "from-env")
		assert.Equal(t, "2.0.0", getVersionInfo())
	})

	t.Run("environment when unstamped", func(t *testing.T) {
		setVersion(t, "dev")
		t.Setenv(EnvVersion, "from-env")
		assert.Equal(t, "from-env", getVersionInfo())
	})

	t.Run("dev fallback", func(t *testing.T) {
		setVersion(t, "")
		t.Setenv(EnvVersion, "")
		assert.Equal(t, "dev", getVersionInfo())
	})
}
