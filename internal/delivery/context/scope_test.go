package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDFrom(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))
	assert.Equal(t, "req-2", RequestIDFrom(WithRequestID(context.Background(), "req-2")))
}

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))

	ctx, reqLogger := WithRequestScope(context.Background(), base, "req-3")
	assert.Equal(t, "req-3", RequestIDFrom(ctx))
	assert.Same(t, reqLogger, LoggerFrom(ctx, fallback))

	reqLogger.Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-3")

	// Overriding the id keeps the tagged logger.
	ctx = WithRequestID(ctx, "req-4")
	assert.Equal(t, "req-4", RequestIDFrom(ctx))
	assert.Same(t, reqLogger, LoggerFrom(ctx, fallback))
}

func TestBindEcho(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	assert.Empty(t, EchoRequestID(c))

	BindEcho(c, logger, "req-5")

	assert.Equal(t, "req-5", EchoRequestID(c))
	assert.Equal(t, "req-5", rec.Header().Get(HeaderXRequestID))
	assert.Equal(t, "req-5", RequestIDFrom(c.Request().Context()))
	require.NotSame(t, logger, LoggerFrom(c.Request().Context(), logger))
}
