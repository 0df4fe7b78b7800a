package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawtag/internal/delivery/http/response"
	domainerrors "pawtag/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (*ErrorMiddleware, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	rec := httptest.NewRecorder()

	return NewErrorMiddleware(logger), e.NewContext(req, rec), rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m, c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrReportAlreadyActive, c)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "REPORT_ALREADY_ACTIVE", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m, c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Method Not Allowed", body.Message)
}

func TestErrorMiddleware_UnhandledError(t *testing.T) {
	m, c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("firestore unavailable"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "firestore unavailable", body.Error.Details)
}

// Once a handler has written a response, the error handler must not write
// a second one.
func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m, c, rec := newErrorTestContext(t)

	require.NoError(t, c.JSON(http.StatusOK, map[string]string{"status": "ok"}))
	before := rec.Body.String()

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, before, rec.Body.String())
}
