package service

import (
	"context"
	"net/http"

	"captions/internal/domain/entity"
)

// IdentityVerifier turns a bearer token into a caller.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (entity.Caller, error)
}

// WebhookVerifier checks the signature of an identity provider webhook delivery.
type WebhookVerifier interface {
	Verify(header http.Header, body []byte) error
}
