package pages

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes registers the page routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Landing)
	e.POST("/contact", h.SubmitContact, middleware.BodyLimit("16K"))
}
