// Package webhook verifies Svix-signed identity provider webhook deliveries.
package webhook

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"captions/config"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/service"
	"captions/internal/errors"

	svix "github.com/svix/svix-webhooks/go"
)

const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

// svixVerifier checks signatures with the Svix client and applies the
// configured timestamp tolerance itself.
type svixVerifier struct {
	webhook   *svix.Webhook
	tolerance time.Duration
	now       func() time.Time
}

// noopVerifier accepts every delivery; used when no signing secret is configured.
type noopVerifier struct{}

func (noopVerifier) Verify(http.Header, []byte) error { return nil }

// NewVerifier returns a signature verifier for the webhook config section.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.WebhookVerifier, error) {
	if cfg.Webhook == nil || cfg.Webhook.SigningSecret == "" {
		logger.Warn("Webhook signing secret not configured, identity webhook signatures are not verified")

		return noopVerifier{}, nil
	}

	return NewSvixVerifier(cfg.Webhook.SigningSecret, cfg.Webhook.Tolerance)
}

// NewSvixVerifier builds a verifier from a whsec_ secret.
func NewSvixVerifier(secret string, tolerance time.Duration) (service.WebhookVerifier, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, errors.Wrap(err, "decode webhook signing secret")
	}

	return &svixVerifier{
		webhook:   wh,
		tolerance: tolerance,
		now:       time.Now,
	}, nil
}

// Verify returns ErrInvalidSignature unless one of the listed v1 signatures
// matches and the timestamp is within tolerance.
func (v *svixVerifier) Verify(header http.Header, body []byte) error {
	if header.Get(HeaderID) == "" || header.Get(HeaderTimestamp) == "" || header.Get(HeaderSignature) == "" {
		return domainerrors.ErrInvalidSignature.WrapMessage("missing signature headers")
	}

	seconds, err := strconv.ParseInt(header.Get(HeaderTimestamp), 10, 64)
	if err != nil {
		return domainerrors.ErrInvalidSignature.WrapMessage("invalid signature timestamp")
	}
	if v.tolerance > 0 {
		skew := v.now().Sub(time.Unix(seconds, 0))
		if skew > v.tolerance || skew < -v.tolerance {
			return domainerrors.ErrInvalidSignature.WrapMessage("signature timestamp outside tolerance")
		}
	}

	if err := v.webhook.VerifyIgnoringTimestamp(body, header); err != nil {
		return domainerrors.ErrInvalidSignature.WrapMessage(err.Error())
	}

	return nil
}
