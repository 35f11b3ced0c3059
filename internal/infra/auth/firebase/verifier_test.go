package firebase

import (
	"context"
	"errors"
	"testing"

	domainerrors "captions/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	token *auth.Token
	err   error
}

func (f *fakeClient) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.err
}

func TestVerifier_VerifyToken(t *testing.T) {
	v := &verifier{client: &fakeClient{token: &auth.Token{
		Issuer: "https://securetoken.google.com/captions",
		UID:    "ext_1",
		Claims: map[string]any{
			"email":   "a@b.c",
			"name":    "Ada",
			"picture": "https://img/1.png",
		},
	}}}

	caller, err := v.VerifyToken(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "ext_1", caller.Subject)
	assert.Equal(t, "https://securetoken.google.com/captions", caller.Issuer)
	assert.Equal(t, "a@b.c", caller.Email)
	assert.Equal(t, "Ada", caller.Name)
	assert.Equal(t, "https://img/1.png", caller.ImageURL)
}

func TestVerifier_VerifyToken_MissingClaims(t *testing.T) {
	v := &verifier{client: &fakeClient{token: &auth.Token{UID: "ext_2", Claims: map[string]any{"email": 42}}}}

	caller, err := v.VerifyToken(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "ext_2", caller.Subject)
	assert.Empty(t, caller.Email)
}

func TestVerifier_VerifyToken_Invalid(t *testing.T) {
	v := &verifier{client: &fakeClient{err: errors.New("ID token has expired")}}

	caller, err := v.VerifyToken(context.Background(), "token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.False(t, caller.IsAuthenticated())
}
