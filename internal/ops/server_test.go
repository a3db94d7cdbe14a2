package ops

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mentorhub/mentorhub-client/config"
)

func opsConfig() config.OpsConfig {
	return config.OpsConfig{Enabled: true, Addr: "127.0.0.1:0"}
}

func TestServer_Healthz(t *testing.T) {
	server := NewServer(opsConfig(), func() bool { return true })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	server.srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-cache, no-store, max-age=0, must-revalidate", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_Healthz_NotReady(t *testing.T) {
	server := NewServer(opsConfig(), func() bool { return false })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	server.srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","reason":"client is starting up"}`, w.Body.String())
}

func TestServer_Healthz_FollowsReadinessSignal(t *testing.T) {
	var ready atomic.Bool
	server := NewServer(opsConfig(), ready.Load)

	probe := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
		server.srv.Handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusServiceUnavailable, probe())
	ready.Store(true)
	assert.Equal(t, http.StatusOK, probe())
}

func TestServer_Metrics(t *testing.T) {
	server := NewServer(opsConfig(), func() bool { return true })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	server.srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
