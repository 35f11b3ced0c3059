// Package auth provides concrete implementations for caller identity verification.
package auth

import (
	"context"
	"strings"
	"time"

	"captions/config"
	"captions/internal/domain/entity"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/service"
	"captions/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const clockSkewLeeway = 30 * time.Second

// callerClaims are the identity claims read from a provider-issued session token.
type callerClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Picture  string `json:"picture,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// jwtVerifier verifies session tokens signed with RS256 (public key) or HS256 (shared secret).
type jwtVerifier struct {
	key    any
	parser *jwt.Parser
}

// NewJWTVerifier builds a verifier from the identity config section.
// A PEM public key takes precedence over an HMAC secret.
func NewJWTVerifier(cfg *config.IdentityConfig) (service.IdentityVerifier, error) {
	if cfg == nil {
		return nil, errors.New("identity config must be provided")
	}

	var (
		key    any
		method string
	)
	switch {
	case strings.TrimSpace(cfg.PublicKeyPEM) != "":
		publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, errors.Wrap(err, "parse identity public key")
		}
		key, method = publicKey, jwt.SigningMethodRS256.Alg()
	case cfg.HMACSecret != "":
		key, method = []byte(cfg.HMACSecret), jwt.SigningMethodHS256.Alg()
	default:
		return nil, errors.New("identity publicKeyPEM or hmacSecret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkewLeeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &jwtVerifier{
		key:    key,
		parser: jwt.NewParser(opts...),
	}, nil
}

// VerifyToken validates the token and returns the caller it identifies.
func (v *jwtVerifier) VerifyToken(_ context.Context, tokenString string) (entity.Caller, error) {
	claims := &callerClaims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return entity.Anonymous(), domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if claims.Subject == "" {
		return entity.Anonymous(), domainerrors.ErrInvalidToken.WrapMessage("token has no subject")
	}

	imageURL := claims.ImageURL
	if imageURL == "" {
		imageURL = claims.Picture
	}

	return entity.Caller{
		Subject:  claims.Subject,
		Issuer:   claims.Issuer,
		Email:    claims.Email,
		Name:     claims.Name,
		ImageURL: imageURL,
	}, nil
}
