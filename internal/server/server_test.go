package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Data.DataDir = t.TempDir()
	_, err := config.EnsureDataDir(cfg)
	require.NoError(t, err)
	return NewServer(cfg, zerolog.Nop(), "test")
}

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	for _, path := range []string{"/", "/api/status", "/api/variants"} {
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
	}

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report/download/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Preflight(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/report", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestServer_ShutdownBeforeRun(t *testing.T) {
	t.Parallel()

	assert.NoError(t, newTestServer(t).Shutdown(t.Context()))
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ":5500", newTestServer(t).Addr())
}
