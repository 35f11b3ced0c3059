package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "captions/internal/delivery/context"
	"captions/internal/domain/entity"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	Logger   *slog.Logger
}

// AuthMiddleware turns the Authorization header into an entity.Caller.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// Authenticate attaches the caller to the request.
// Requests without a token continue as anonymous; the use cases decide whether that is allowed.
// A present but invalid token is rejected with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			deliverycontext.SetCaller(c, entity.Anonymous())

			return next(c)
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header must be a Bearer token")
		}

		caller, err := m.verifier.VerifyToken(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			deliverycontext.LoggerOr(c.Request().Context(), m.logger).
				Info("Rejected caller token", slog.Any("error", err))

			return err
		}

		deliverycontext.SetCaller(c, caller)

		return next(c)
	}
}
