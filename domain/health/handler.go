package health

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/config"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/version"
)

// Handler handles health check requests
type Handler struct {
	site    *content.Site
	cfg     *config.Config
	startAt time.Time
}

// NewHandler creates a new health handler
func NewHandler(site *content.Site, cfg *config.Config) *Handler {
	return &Handler{
		site:    site,
		cfg:     cfg,
		startAt: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string           `json:"status"`
	Timestamp   string           `json:"timestamp"`
	Uptime      string           `json:"uptime"`
	Version     string           `json:"version"`
	Environment string           `json:"environment"`
	Checks      map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health
func (h *Handler) Health(c echo.Context) error {
	checks := map[string]Check{
		"content": h.contentCheck(),
		"email":   h.emailCheck(),
	}

	overallStatus := "healthy"
	for _, check := range checks {
		if check.Status == "unhealthy" {
			overallStatus = "unhealthy"
		}
	}

	response := HealthResponse{
		Status:      overallStatus,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startAt).String(),
		Version:     version.Version,
		Environment: h.cfg.Environment,
		Checks:      checks,
	}

	statusCode := http.StatusOK
	if overallStatus == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

func (h *Handler) contentCheck() Check {
	if h.site == nil || len(h.site.Services) == 0 {
		return Check{Status: "unhealthy", Message: "site content not loaded"}
	}
	return Check{Status: "healthy"}
}

func (h *Handler) emailCheck() Check {
	if h.cfg.Email.Enabled && h.cfg.Email.IsConfigured() {
		return Check{Status: "healthy", Message: "mailgun"}
	}
	return Check{Status: "healthy", Message: "simulated"}
}

// Healthz returns a simple health check (for k8s liveness probe)
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready returns readiness status (for k8s readiness probe)
func (h *Handler) Ready(c echo.Context) error {
	if check := h.contentCheck(); check.Status != "healthy" {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": check.Message,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns debug information (only outside production)
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"version":     version.Info(),
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
	})
}
