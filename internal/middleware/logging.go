package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-platform/pkg/logger"
)

// RequestLogger emits one structured log line per request with method,
// path, status, latency and the caller identity when present.  Handler
// errors are recorded and passed through to Echo's error handler.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			log := logger.Get()
			ev := log.Info()
			if err != nil {
				ev = log.Error().Err(err)
			}
			ev.Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("ip", c.RealIP()).
				Str("user", userID(c)).
				Msg("request")
			return err
		}
	}
}
