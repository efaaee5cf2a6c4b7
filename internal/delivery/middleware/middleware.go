// Package middleware holds the echo middlewares shared by the dashboard API and the notifier.
package middleware

import (
	"log/slog"
	"time"

	deliverycontext "safewallet/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestScope reuses the caller's X-Request-Id or mints one, then binds it
// with a tagged logger to the request.
func RequestScope(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			deliverycontext.BindEcho(c, logger, requestID)

			return next(c)
		}
	}
}

// AccessLog writes one line per request; it is a pass-through unless verbose.
// Status 4xx logs at warn and 5xx at error so redelivery storms stand out.
func AccessLog(logger *slog.Logger, verbose bool) echo.MiddlewareFunc {
	return accessLog(logger, verbose, time.Now)
}

func accessLog(logger *slog.Logger, verbose bool, now func() time.Time) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !verbose {
			return next
		}

		return func(c echo.Context) error {
			start := now()
			err := next(c)

			req := c.Request()
			status := c.Response().Status

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("request_id", deliverycontext.EchoRequestID(c)),
				slog.String("method", req.Method),
				slog.String("uri", req.URL.Path),
				slog.Int("status", status),
				slog.Duration("latency", now().Sub(start)),
				slog.String("remote_ip", c.RealIP()),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			logger.LogAttrs(req.Context(), level, "HTTP Request", attrs...)

			return err
		}
	}
}
