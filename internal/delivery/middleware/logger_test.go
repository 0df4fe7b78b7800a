package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawtag/config"
	deliverycontext "pawtag/internal/delivery/context"
	"pawtag/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggerTestContext(t *testing.T, debug bool) (*LoggerMiddleware, echo.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pets?limit=5", nil)
	rec := httptest.NewRecorder()

	return NewLoggerMiddleware(logger, cfg), e.NewContext(req, rec), &buf
}

func TestLoggerMiddleware_LogsSessionUser(t *testing.T) {
	m, c, buf := newLoggerTestContext(t, true)
	deliverycontext.SetSession(c, &entity.Session{UserID: "user-1"})

	handler := m.Handle(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	require.NoError(t, handler(c))

	out := buf.String()
	assert.Contains(t, out, `"user_id":"user-1"`)
	assert.Contains(t, out, `"query":"limit=5"`)
	assert.Contains(t, out, `"method":"GET"`)
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	m, c, buf := newLoggerTestContext(t, false)

	handler := m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, handler(c))

	assert.Empty(t, buf.String())
}
