package contact

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes registers the contact form API
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/contact")
	g.Use(middleware.BodyLimit("16K"))

	g.POST("", h.Submit)
}
