package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"captions/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Attribute keys set on every published identity event.
const (
	AttrEventType  = "event_type"
	AttrDeliveryID = "delivery_id"
	AttrRequestID  = "request_id"
)

const localSubscription = "projects/local/subscriptions/identity-events-sub"

// PushEnvelope is the JSON body Pub/Sub posts to push subscribers.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps event the way a push subscription would deliver it.
// The provider delivery id doubles as the message id when present.
func NewPushEnvelope(event *service.IdentityEventMessage, subscription string, at time.Time) (*PushEnvelope, error) {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	env := &PushEnvelope{Subscription: subscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = attrs
	env.Message.MessageID = event.DeliveryID
	if env.Message.MessageID == "" {
		env.Message.MessageID = uuid.NewString()
	}
	env.Message.PublishTime = at.UTC().Format(time.RFC3339)

	return env, nil
}

// Decode returns the identity event carried in the envelope.
func (e *PushEnvelope) Decode() (*service.IdentityEventMessage, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.IdentityEventMessage
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal identity event")
	}

	return &event, nil
}

// Attribute returns a message attribute, or "" when absent.
func (e *PushEnvelope) Attribute(key string) string {
	return e.Message.Attributes[key]
}

// encodeEvent serializes event and derives the attributes used for
// subscription filtering and tracing.
func encodeEvent(event *service.IdentityEventMessage) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attrs := map[string]string{AttrEventType: event.Type}
	if event.DeliveryID != "" {
		attrs[AttrDeliveryID] = event.DeliveryID
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return data, attrs, nil
}
