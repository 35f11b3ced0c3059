package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"captions/config"
	deliverycontext "captions/internal/delivery/context"
	"captions/internal/domain/constants"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/service"
	"captions/internal/infra/pubsub"
	mockUsecase "captions/internal/mocks/usecase"
	"captions/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockIdentitySyncUsecase) {
	syncUC := mockUsecase.NewMockIdentitySyncUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		SyncUC: syncUC,
	})

	return h, syncUC
}

func pushBody(t *testing.T, event *service.IdentityEventMessage, attributes map[string]string) string {
	t.Helper()

	msg, err := pubsub.NewPushEnvelope(event, "projects/local/subscriptions/identity-events-sub", time.Now())
	require.NoError(t, err)
	if attributes != nil {
		msg.Message.Attributes = attributes
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		outcome  usecase.SyncOutcome
		err      error
		wantCode int
	}{
		{"upserted", usecase.SyncOutcomeUpserted, nil, http.StatusOK},
		{"ignored", usecase.SyncOutcomeIgnored, nil, http.StatusOK},
		{"malformed", usecase.SyncOutcomeMalformed, domainerrors.ErrMalformedEvent.WrapMessage("missing id"), http.StatusOK},
		{"storage failure", usecase.SyncOutcomeFailed, errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, syncUC := createTestPushHandler(t, &config.Config{})
			event := &service.IdentityEventMessage{Type: "user.created", Data: json.RawMessage(`{"id":"ext_1"}`)}

			syncUC.EXPECT().
				HandleEvent(mock.Anything, mock.MatchedBy(func(e *usecase.IdentityEvent) bool {
					return e.Type == "user.created" && string(e.Data) == `{"id":"ext_1"}`
				})).
				Return(tt.outcome, tt.err).Once()

			rec := doPush(h, pushBody(t, event, nil), nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_RequestIDPropagation(t *testing.T) {
	h, syncUC := createTestPushHandler(t, &config.Config{})
	event := &service.IdentityEventMessage{RequestID: "from-event", Type: "user.deleted", Data: json.RawMessage(`{"id":"ext_1"}`)}

	var seen string
	syncUC.EXPECT().HandleEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *usecase.IdentityEvent) {
			seen = deliverycontext.RequestIDFrom(ctx)
		}).
		Return(usecase.SyncOutcomeDeleted, nil).Once()

	rec := doPush(h, pushBody(t, event, map[string]string{"request_id": "from-attributes"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "from-attributes", seen)
}

func TestPushHandler_BadEnvelope(t *testing.T) {
	h, syncUC := createTestPushHandler(t, &config.Config{})

	rec := doPush(h, `{"message":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	syncUC.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
}

func TestPushHandler_UndecodableDataAcknowledged(t *testing.T) {
	h, syncUC := createTestPushHandler(t, &config.Config{})

	rec := doPush(h, `{"message":{"data":"!!!not-base64","messageId":"m-2"}}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	syncUC.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
}

func googleConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example/push",
	}}
	cfg.Env.Env = "production"

	return cfg
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	h, syncUC := createTestPushHandler(t, googleConfig())
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("invalid token")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	body := pushBody(t, &service.IdentityEventMessage{Type: "user.updated", Data: json.RawMessage(`{"id":"ext_1"}`)}, nil)

	rec := doPush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doPush(h, body, http.Header{"Authorization": []string{"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	syncUC.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(usecase.SyncOutcomeUpserted, nil).Once()
	rec = doPush(h, body, http.Header{"Authorization": []string{"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://worker.example/push", gotAudience)
}

func TestPushHandler_RejectsForeignIssuer(t *testing.T) {
	h, _ := createTestPushHandler(t, googleConfig())
	h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example"}, nil
	}

	body := pushBody(t, &service.IdentityEventMessage{Type: "user.updated"}, nil)
	rec := doPush(h, body, http.Header{"Authorization": []string{"Bearer token"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_DevelopSkipsPushAuth(t *testing.T) {
	cfg := googleConfig()
	cfg.Env.Env = constants.EnvDevelop

	h, _ := createTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
