package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"captions/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received PushEnvelope
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.IdentityEventMessage{
		RequestID:  "req-1",
		DeliveryID: "msg_1",
		Type:       "user.created",
		Data:       json.RawMessage(`{"id":"ext_1"}`),
	}

	require.NoError(t, publisher.PublishIdentityEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "msg_1", received.Message.MessageID)
	assert.Equal(t, "user.created", received.Message.Attributes["event_type"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	decoded, err := received.Decode()
	require.NoError(t, err)
	assert.Equal(t, "user.created", decoded.Type)
	assert.JSONEq(t, `{"id":"ext_1"}`, string(decoded.Data))
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishIdentityEvent(context.Background(), &service.IdentityEventMessage{Type: "user.deleted"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
