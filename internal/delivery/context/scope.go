package context

import (
	"context"
	"log/slog"

	"captions/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

// Keys used in the echo.Context store.
const (
	requestIDStoreKey = "captions.request_id"
	callerStoreKey    = "captions.caller"
)

type scopeKey struct{}

// scope is the request-scoped state carried through context.Context.
// Values are copied on write so parent contexts never observe changes.
type scope struct {
	requestID string
	logger    *slog.Logger
}

func scopeFrom(ctx context.Context) scope {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok {
		return s
	}

	return scope{}
}

// WithRequestID returns a context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	s := scopeFrom(ctx)
	s.requestID = requestID

	return context.WithValue(ctx, scopeKey{}, s)
}

// WithLogger returns a context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	s := scopeFrom(ctx)
	s.logger = logger

	return context.WithValue(ctx, scopeKey{}, s)
}

// RequestIDFrom returns the request ID carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// LoggerOr returns the request-scoped logger carried by ctx, or fallback.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := scopeFrom(ctx).logger; logger != nil {
		return logger
	}

	return fallback
}

// Bind attaches the request ID and a logger tagged with it to both the echo
// store and the request's context.Context, and returns the tagged logger.
func Bind(c echo.Context, requestID string, base *slog.Logger) *slog.Logger {
	logger := base.With(slog.String("request_id", requestID))

	c.Set(requestIDStoreKey, requestID)
	ctx := WithLogger(WithRequestID(c.Request().Context(), requestID), logger)
	c.SetRequest(c.Request().WithContext(ctx))

	return logger
}

// RequestID returns the ID bound to the request. Requests that never passed
// through Bind get a fresh UUID so responses always carry one.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDStoreKey).(string); ok && id != "" {
		return id
	}
	if id := RequestIDFrom(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetCaller stores the caller resolved by the auth middleware.
func SetCaller(c echo.Context, caller entity.Caller) {
	c.Set(callerStoreKey, caller)
}

// GetCaller returns the caller stored on the request, or an anonymous caller.
func GetCaller(c echo.Context) entity.Caller {
	if caller, ok := c.Get(callerStoreKey).(entity.Caller); ok {
		return caller
	}

	return entity.Anonymous()
}
