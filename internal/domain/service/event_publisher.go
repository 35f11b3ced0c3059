package service

import (
	"context"
	"encoding/json"
)

// IdentityEventMessage is an identity provider event relayed to the identity worker
type IdentityEventMessage struct {
	RequestID  string          `json:"request_id,omitempty"`  // For distributed tracing
	DeliveryID string          `json:"delivery_id,omitempty"` // Provider delivery id (svix-id)
	Type       string          `json:"type"`
	Data       json.RawMessage `json:"data"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishIdentityEvent publishes an identity event for async reconciliation
	PublishIdentityEvent(ctx context.Context, event *IdentityEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
