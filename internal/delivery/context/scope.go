// Package context carries request-scoped values from the deliveries to the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header used to propagate request ids between
// the app, the dashboard and the notifier.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey is where the id is kept in echo's per-request store.
const echoRequestIDKey = "request_id"

type scopeKey struct{}

// scope is stored once per context so the id and its tagged logger travel together.
type scope struct {
	requestID string
	logger    *slog.Logger
}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

// WithRequestID returns a context carrying requestID, keeping any scoped logger.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	s := scopeFrom(ctx)
	s.requestID = requestID

	return context.WithValue(ctx, scopeKey{}, s)
}

// WithRequestScope tags logger with requestID and stores both in ctx.
func WithRequestScope(ctx context.Context, logger *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	tagged := logger.With(slog.String("request_id", requestID))

	return context.WithValue(ctx, scopeKey{}, scope{requestID: requestID, logger: tagged}), tagged
}

// RequestIDFrom returns the request id of ctx, empty when unset.
func RequestIDFrom(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l := scopeFrom(ctx).logger; l != nil {
		return l
	}

	return fallback
}

// BindEcho attaches the request scope to an echo request and answers with the id.
func BindEcho(c echo.Context, logger *slog.Logger, requestID string) {
	c.Set(echoRequestIDKey, requestID)
	c.Response().Header().Set(HeaderXRequestID, requestID)

	ctx, _ := WithRequestScope(c.Request().Context(), logger, requestID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// EchoRequestID returns the id bound by BindEcho.
func EchoRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}
