package pubsub

import (
	"encoding/json"
	"testing"
	"time"

	"captions/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushEnvelope_RoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	event := &service.IdentityEventMessage{
		RequestID:  "req-9",
		DeliveryID: "msg_9",
		Type:       "user.updated",
		Data:       json.RawMessage(`{"id":"ext_9"}`),
	}

	env, err := NewPushEnvelope(event, "sub", at)
	require.NoError(t, err)

	assert.Equal(t, "msg_9", env.Message.MessageID)
	assert.Equal(t, "2026-03-01T11:00:00Z", env.Message.PublishTime)
	assert.Equal(t, "req-9", env.Attribute(AttrRequestID))
	assert.Equal(t, "msg_9", env.Attribute(AttrDeliveryID))
	assert.Empty(t, env.Attribute("missing"))

	decoded, err := env.Decode()
	require.NoError(t, err)
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.RequestID, decoded.RequestID)
	assert.JSONEq(t, `{"id":"ext_9"}`, string(decoded.Data))
}

func TestPushEnvelope_GeneratesMessageID(t *testing.T) {
	env, err := NewPushEnvelope(&service.IdentityEventMessage{Type: "user.deleted"}, "sub", time.Now())
	require.NoError(t, err)

	_, err = uuid.Parse(env.Message.MessageID)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{AttrEventType: "user.deleted"}, env.Message.Attributes)
}

func TestPushEnvelope_DecodeRejectsGarbage(t *testing.T) {
	env := &PushEnvelope{}
	env.Message.Data = "%%%"
	_, err := env.Decode()
	assert.Error(t, err)

	env.Message.Data = "bm90IGpzb24=" // "not json"
	_, err = env.Decode()
	assert.Error(t, err)
}
