package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/passcheck/pkg/logger"
)

// Logger logs every request and stores a request-scoped logger in the request
// context. Bodies are never logged since they carry passwords.
func Logger(base *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		requestID := c.GetString(ContextRequestID)

		reqLogger := base.WithFields(map[string]interface{}{
			"request_id": requestID,
		})
		c.Request = c.Request.WithContext(reqLogger.ToContext(c.Request.Context()))

		c.Next()

		statusCode := c.Writer.Status()
		zl := reqLogger.Zerolog()

		var event *zerolog.Event
		var msg string
		switch {
		case statusCode >= 500:
			event, msg = zl.Error(), "Server error"
		case statusCode >= 400:
			event, msg = zl.Warn(), "Client error"
		default:
			event, msg = zl.Info(), "Request processed"
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("ip", c.ClientIP()).
			Int("status", statusCode).
			Dur("duration", time.Since(start)).
			Str("user_agent", c.Request.UserAgent()).
			Msg(msg)
	}
}
