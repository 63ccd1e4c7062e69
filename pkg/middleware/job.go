package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequireJobID rejects job routes whose :id is not a UUID. Such ids can never
// match a job, so they get the same 404 body as an unknown job.
func RequireJobID(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := uuid.Parse(c.Param(param)); err != nil {
				return c.JSON(http.StatusNotFound, map[string]interface{}{
					"error": "Job not found",
				})
			}
			return next(c)
		}
	}
}

// ZapLogger logs one structured line per request
func ZapLogger(logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []zap.Field{
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				logger.Error("🔥 request failed", fields...)
			case res.Status >= http.StatusBadRequest:
				logger.Warn("⚠️ request rejected", fields...)
			default:
				logger.Debug("request served", fields...)
			}
			return nil
		}
	}
}
