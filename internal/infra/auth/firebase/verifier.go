// Package firebase verifies Firebase ID tokens as caller identities.
package firebase

import (
	"context"

	"captions/internal/domain/entity"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/service"
	"captions/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// idTokenVerifier is the subset of the Firebase auth client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type verifier struct {
	client idTokenVerifier
}

// NewVerifier initializes a Firebase app and returns a verifier backed by its auth client.
// An empty credentialsPath falls back to application default credentials.
func NewVerifier(ctx context.Context, projectID, credentialsPath string) (service.IdentityVerifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &verifier{client: client}, nil
}

// VerifyToken validates the Firebase ID token and maps its claims to a caller.
func (v *verifier) VerifyToken(ctx context.Context, idToken string) (entity.Caller, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return entity.Anonymous(), domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	return entity.Caller{
		Subject:  token.UID,
		Issuer:   token.Issuer,
		Email:    stringClaim(token.Claims, "email"),
		Name:     stringClaim(token.Claims, "name"),
		ImageURL: stringClaim(token.Claims, "picture"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
