package contact

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/apperror"
)

// SubmitResponse is returned by POST /api/contact for every handled attempt.
type SubmitResponse struct {
	Status       Status       `json:"status"`
	Notification Notification `json:"notification"`
	Form         Values       `json:"form"`
	Field        string       `json:"field,omitempty"`
	SubmissionID string       `json:"submission_id,omitempty"`
}

// Handler serves the contact form API.
type Handler struct {
	svc     *Service
	limiter *RateLimiter
}

// NewHandler creates a contact handler.
func NewHandler(svc *Service, limiter *RateLimiter) *Handler {
	return &Handler{svc: svc, limiter: limiter}
}

// Submit handles POST /api/contact
func (h *Handler) Submit(c echo.Context) error {
	var req Values
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return apperror.NewBadRequest("Invalid contact request body")
	}

	var sink Recorder
	out := h.svc.Submit(c.Request().Context(), FormFrom(req), h.Client(c), &sink)
	return c.JSON(StatusCode(out), NewSubmitResponse(out))
}

// Client identifies the caller of c and binds it to the per-IP rate limit.
// Used by the HTML fallback too.
func (h *Handler) Client(c echo.Context) Client {
	ip := c.RealIP()
	return Client{
		IP:    ip,
		Allow: func() bool { return h.limiter.Allow(ip) },
	}
}

// Service exposes the submit flow to other transports.
func (h *Handler) Service() *Service {
	return h.svc
}

// NewSubmitResponse converts an outcome into its API representation.
func NewSubmitResponse(out Outcome) SubmitResponse {
	resp := SubmitResponse{
		Status:       out.Status,
		Notification: out.Notification,
		Form:         out.Values,
		SubmissionID: out.SubmissionID,
	}
	if ve := out.ValidationError(); ve != nil {
		resp.Field = ve.Field.String()
	}
	return resp
}

// StatusCode maps an outcome to its HTTP status.
func StatusCode(out Outcome) int {
	switch out.Status {
	case StatusSent:
		return http.StatusOK
	case StatusInvalid:
		return http.StatusUnprocessableEntity
	case StatusFailed:
		return apperror.ErrDelivery.HTTPStatus
	case StatusRateLimited:
		return apperror.ErrTooManyRequests.HTTPStatus
	default:
		return http.StatusInternalServerError
	}
}
