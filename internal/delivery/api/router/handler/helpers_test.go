package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "captions/internal/delivery/api/middleware"
	"captions/internal/delivery/api/validator"
	deliverycontext "captions/internal/delivery/context"
	"captions/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context wired with the production error handler.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withCaller(c echo.Context, subject string) entity.Caller {
	caller := entity.Caller{Subject: subject}
	deliverycontext.SetCaller(c, caller)

	return caller
}

// serve runs h and renders any returned error the way the server would.
func serve(t *testing.T, c echo.Context, h echo.HandlerFunc) {
	t.Helper()

	if err := h(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}
	require.True(t, c.Response().Committed)
}
