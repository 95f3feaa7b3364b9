package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/config"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
)

func newTestServer(t *testing.T, site *content.Site, env string) *echo.Echo {
	t.Helper()
	e := echo.New()
	RegisterRoutes(e, NewHandler(site, &config.Config{Environment: env}))
	return e
}

func loadSite(t *testing.T) *content.Site {
	t.Helper()
	site, err := content.Load()
	require.NoError(t, err)
	return site
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, loadSite(t), "local")

	rec := get(e, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "local", resp.Environment)
	assert.Equal(t, "dev", resp.Version)
	assert.NotEmpty(t, resp.Timestamp)
	assert.NotEmpty(t, resp.Uptime)
	assert.Equal(t, "simulated", resp.Checks["email"].Message)
	assert.Equal(t, "healthy", resp.Checks["content"].Status)
}

func TestHealth_MissingContent(t *testing.T) {
	e := newTestServer(t, &content.Site{}, "local")

	rec := get(e, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = get(e, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_ready")
}

func TestHealthz(t *testing.T) {
	rec := get(newTestServer(t, loadSite(t), "local"), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestReady(t *testing.T) {
	rec := get(newTestServer(t, loadSite(t), "local"), "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestDebug_HiddenInProduction(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(newTestServer(t, loadSite(t), "local"), "/debug").Code)
	assert.Equal(t, http.StatusNotFound, get(newTestServer(t, loadSite(t), "production"), "/debug").Code)
}

func TestMetrics(t *testing.T) {
	rec := get(newTestServer(t, loadSite(t), "local"), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}
