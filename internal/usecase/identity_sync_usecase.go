package usecase

import (
	"context"
	"encoding/json"
)

// IdentityEvent is the webhook envelope sent by the identity provider.
type IdentityEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// SyncOutcome describes what applying an identity event did.
type SyncOutcome string

const (
	SyncOutcomeUpserted      SyncOutcome = "upserted"
	SyncOutcomeDeleted       SyncOutcome = "deleted"
	SyncOutcomeAlreadyAbsent SyncOutcome = "already_absent"
	SyncOutcomeIgnored       SyncOutcome = "ignored"
	SyncOutcomeMalformed     SyncOutcome = "malformed"
	SyncOutcomeFailed        SyncOutcome = "failed"
)

// IdentitySyncUsecase applies identity provider lifecycle events to local users.
type IdentitySyncUsecase interface {
	// HandleEvent applies one event. Re-applying the same event leaves the same state.
	HandleEvent(ctx context.Context, event *IdentityEvent) (SyncOutcome, error)
}
