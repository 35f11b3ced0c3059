package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"captions/config"
	deliverycontext "captions/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_UsesIncomingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "upstream-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxRequestID string
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		ctxRequestID = deliverycontext.RequestIDFrom(c.Request().Context())
		assert.NotNil(t, deliverycontext.LoggerOr(c.Request().Context(), nil))
		assert.Equal(t, "upstream-123", deliverycontext.RequestID(c))

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "upstream-123", ctxRequestID)
	assert.Equal(t, "upstream-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesInvalidHeader(t *testing.T) {
	tests := []string{"", "has space", strings.Repeat("a", maxRequestIDLength+1)}

	for _, incoming := range tests {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, incoming)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewRequestIDMiddleware(slog.Default()).Process(func(echo.Context) error { return nil })

		require.NoError(t, handler(c))
		_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NoError(t, err, "incoming %q", incoming)
	}
}

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func TestLoggerMiddleware_LogsServerErrorsWithoutDebug(t *testing.T) {
	logger, buf := newBufferedLogger()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/boom", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, c.Response().Status)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestLoggerMiddleware_QuietForSuccessWithoutDebug(t *testing.T) {
	logger, buf := newBufferedLogger()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ok", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_DebugLogsEveryRequest(t *testing.T) {
	logger, buf := newBufferedLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ok?x=1", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"query":"x=1"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}
