package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/config"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/apperror"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/logger"
)

const (
	CSRFFieldName  = "csrf_token"
	CSRFHeaderName = "X-CSRF-Token"
	csrfCookieName = "_4data_csrf"
)

// NewCSRF wraps gorilla/csrf as Echo middleware. Without a configured key a
// random one is generated, so tokens do not survive a restart. Plain HTTP
// requests (local development) are marked so only the token is checked.
func NewCSRF(cfg config.CSRFConfig, log *slog.Logger) (echo.MiddlewareFunc, error) {
	log = log.With(logger.Scope("server.csrf"))

	key := []byte(cfg.AuthKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errors.New("generate CSRF key")
		}
		log.Warn("CSRF_AUTH_KEY not set, using an ephemeral key")
	}

	protect := csrf.Protect(key,
		csrf.Secure(cfg.SecureCookie),
		csrf.Path("/"),
		csrf.CookieName(csrfCookieName),
		csrf.FieldName(CSRFFieldName),
		csrf.RequestHeader(CSRFHeaderName),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Warn("CSRF check failed",
				slog.String("path", r.URL.Path),
				logger.Error(csrf.FailureReason(r)))
			writeForbidden(w)
		})),
	)

	wrapped := echo.WrapMiddleware(protect)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := wrapped(next)
		return func(c echo.Context) error {
			// Origin and Referer are only enforced for HTTPS (directly or
			// behind a proxy setting X-Forwarded-Proto).
			if c.Scheme() != "https" {
				c.SetRequest(csrf.PlaintextHTTPRequest(c.Request()))
			}
			return h(c)
		}
	}, nil
}

func writeForbidden(w http.ResponseWriter) {
	body := apperror.ErrForbidden.WithMessage("Sessão expirada. Recarregue a página e tente novamente.").Body()
	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(body)
}

// CSRFToken returns the token for the current request, or "" when CSRF
// protection is disabled.
func CSRFToken(c echo.Context) string {
	return csrf.Token(c.Request())
}
