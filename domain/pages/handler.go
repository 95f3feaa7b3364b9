package pages

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/domain/contact"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/components"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/config"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/server"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/apperror"
)

// Handler renders the single-page site.
type Handler struct {
	site    *content.Site
	cfg     *config.Config
	contact *contact.Handler
	now     func() time.Time
}

// NewHandler creates a pages handler
func NewHandler(site *content.Site, cfg *config.Config, contactHandler *contact.Handler) *Handler {
	return &Handler{
		site:    site,
		cfg:     cfg,
		contact: contactHandler,
		now:     time.Now,
	}
}

// Landing handles GET /
func (h *Handler) Landing(c echo.Context) error {
	return h.render(c, http.StatusOK, components.ContactView{}, nil)
}

// SubmitContact handles POST /contact, the form fallback for browsers
// without JavaScript. It re-renders the page with the resulting field
// values and the notification.
func (h *Handler) SubmitContact(c echo.Context) error {
	var values contact.Values
	if err := (&echo.DefaultBinder{}).BindBody(c, &values); err != nil {
		return apperror.NewBadRequest("Invalid contact form")
	}

	var sink contact.Recorder
	out := h.contact.Service().Submit(c.Request().Context(), contact.FormFrom(values), h.contact.Client(c), &sink)

	view := components.ContactView{Values: out.Values}
	if ve := out.ValidationError(); ve != nil {
		view.InvalidField = ve.Field.String()
	}
	return h.render(c, contact.StatusCode(out), view, sink.Notifications())
}

func (h *Handler) render(c echo.Context, status int, view components.ContactView, notifications []contact.Notification) error {
	if token := server.CSRFToken(c); token != "" {
		view.CSRFFieldName = server.CSRFFieldName
		view.CSRFToken = token
	}

	page := h.page(view, notifications)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return page.Render(c.Response())
}

func (h *Handler) page(view components.ContactView, notifications []contact.Notification) g.Node {
	return components.Layout(
		components.PageConfig{
			Title:       h.site.Meta.Title,
			Description: h.site.Meta.Description,
			URL:         h.cfg.BaseURL,
		},
		components.SiteHeader(h.site),
		html.Main(
			components.Hero(h.site),
			components.Services(h.site),
			components.Contact(h.site, view),
		),
		components.PageFooter(h.site, h.now().Year()),
		components.Toaster(notifications),
	)
}
