package pages

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/domain/contact"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/config"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/apperror"
)

func newTestPages(t *testing.T, limiter *contact.RateLimiter) *echo.Echo {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	site, err := content.Load()
	require.NoError(t, err)

	svc := contact.NewService(contact.NewDelaySender(0, log), log)
	h := NewHandler(site, &config.Config{BaseURL: "https://4data.com.br"}, contact.NewHandler(svc, limiter))
	h.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)
	RegisterRoutes(e, h)
	return e
}

func postForm(e *echo.Echo, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Ana"},
		"email":   {"ana@x.com"},
		"phone":   {"11999999999"},
		"message": {"Olá"},
	}
}

func TestLanding(t *testing.T) {
	e := newTestPages(t, contact.NewRateLimiter(10, 3))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `id="site-header"`)
	assert.Contains(t, body, "<main>")
	assert.Contains(t, body, `id="services"`)
	assert.Contains(t, body, `id="contact"`)
	assert.Contains(t, body, "© 2026 4Data. Todos os direitos reservados.")
	assert.Contains(t, body, `content="https://4data.com.br"`)
	assert.Contains(t, body, `id="toaster"`)
	assert.NotContains(t, body, "data-toast=")
	assert.NotContains(t, body, `type="hidden"`)
}

func TestSubmitContact_Sent(t *testing.T) {
	e := newTestPages(t, contact.NewRateLimiter(10, 3))

	rec := postForm(e, validForm())

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Mensagem enviada!")
	assert.Contains(t, body, `data-toast="default"`)
	assert.NotContains(t, body, `value="Ana"`)
}

func TestSubmitContact_InvalidKeepsValues(t *testing.T) {
	e := newTestPages(t, contact.NewRateLimiter(10, 3))

	form := validForm()
	form.Set("phone", "  ")
	rec := postForm(e, form)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Erro no formulário")
	assert.Contains(t, body, "Telefone é obrigatório")
	assert.Contains(t, body, `value="Ana"`)
	assert.Contains(t, body, `aria-invalid="true"`)
}

func TestSubmitContact_RateLimited(t *testing.T) {
	e := newTestPages(t, contact.NewRateLimiter(1, 1))

	assert.Equal(t, http.StatusOK, postForm(e, validForm()).Code)

	rec := postForm(e, validForm())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Muitas tentativas")
	assert.Contains(t, rec.Body.String(), `value="Ana"`)
}

func TestSubmitContact_InvalidAttemptsDoNotUseRateLimit(t *testing.T) {
	e := newTestPages(t, contact.NewRateLimiter(1, 1))

	for _, field := range []string{"name", "phone", "message"} {
		form := validForm()
		form.Set(field, "")
		require.Equal(t, http.StatusUnprocessableEntity, postForm(e, form).Code, field)
	}

	rec := postForm(e, validForm())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mensagem enviada!")
}
