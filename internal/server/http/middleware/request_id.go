package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderXRequestID carries the request identifier in both directions.
const HeaderXRequestID = "X-Request-Id"

const (
	requestIDKey = "request_id"
	loggerKey    = "logger"

	maxRequestIDLength = 128
)

// RequestID reuses the client's X-Request-Id or generates one, echoes it in the
// response and stores a request-scoped logger in the gin context.
func RequestID(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Set(loggerKey, logger.With(slog.String("request_id", requestID)))
		c.Header(HeaderXRequestID, requestID)

		c.Next()
	}
}

// RequestIDFrom returns the identifier assigned by RequestID, or an empty string.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// LoggerFrom returns the request-scoped logger, falling back when RequestID did not run.
func LoggerFrom(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return fallback
}
