package auth

import (
	"context"

	"captions/config"
	"captions/internal/domain/constants"
	"captions/internal/domain/service"
	"captions/internal/errors"
	"captions/internal/infra/auth/firebase"
)

// NewIdentityVerifier selects the caller token verifier configured under identity.provider.
func NewIdentityVerifier(cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Identity == nil {
		return nil, errors.New("identity config must be provided")
	}

	switch cfg.Identity.Provider {
	case constants.IdentityProviderFirebase:
		return firebase.NewVerifier(context.Background(), cfg.Identity.FirebaseProjectID, cfg.Identity.FirebaseCredentialsPath)
	case constants.IdentityProviderJWT, "":
		return NewJWTVerifier(cfg.Identity)
	default:
		return nil, errors.Errorf("unsupported identity provider: %s", cfg.Identity.Provider)
	}
}
