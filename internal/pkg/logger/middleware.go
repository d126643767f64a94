package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every HTTP request with latency and outcome.
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			if raw != "" {
				path = path + "?" + raw
			}

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				String("client_ip", c.RealIP()),
				Int("status", c.Response().Status),
				Duration("latency", latency),
				String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}

			if err != nil {
				fields = append(fields, Err(err))
				logger.Error("request completed with error", fields...)
				return err
			}

			logger.Info("request completed", fields...)
			return nil
		}
	}
}
