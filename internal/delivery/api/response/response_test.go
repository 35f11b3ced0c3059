package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "captions/internal/delivery/context"
	domainerrors "captions/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetRequest(c.Request().WithContext(deliverycontext.WithRequestID(c.Request().Context(), "req-1")))

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestError_DetailsPolicy(t *testing.T) {
	tests := []struct {
		status      int
		details     any
		wantDetails bool
	}{
		{status: http.StatusBadRequest, details: "field x", wantDetails: true},
		{status: http.StatusBadRequest, details: ""},
		{status: http.StatusUnauthorized, details: "token expired"},
		{status: http.StatusForbidden, details: "owned by someone else"},
		{status: http.StatusInternalServerError, details: "pq: relation missing"},
	}

	for _, tt := range tests {
		c, rec := newContext()

		require.NoError(t, Error(c, tt.status, "CODE", "msg", tt.details))

		body := decode(t, rec)
		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, "req-1", body.Meta.RequestID)
		if tt.wantDetails {
			assert.Equal(t, tt.details, body.Error.Details)
		} else {
			assert.Nil(t, body.Error.Details, "status %d", tt.status)
		}
	}
}

func TestFromHTTPError_DerivesCode(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, FromHTTPError(c, echo.NewHTTPError(http.StatusRequestEntityTooLarge)))

	body := decode(t, rec)
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", body.Error.Code)
	assert.Equal(t, "Request Entity Too Large", body.Error.Message)
	assert.Equal(t, "HTTP_ERROR", statusCode(599))
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrProjectNotFound, "lookup")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROJECT_NOT_FOUND", decode(t, rec).Error.Code)

	c, rec = newContext()
	err := HandleAppError(c, domainerrors.ErrInternalError)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	assert.Zero(t, rec.Body.Len())
}
