package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/passcheck/pkg/errors"
	"github.com/jwalitptl/passcheck/pkg/httputil"
	"github.com/jwalitptl/passcheck/pkg/logger"
	"github.com/jwalitptl/passcheck/pkg/metrics"
	"github.com/jwalitptl/passcheck/pkg/ratelimit"
)

// RateLimit rejects clients that exceed the limiter's budget, keyed by client IP
func RateLimit(limiter ratelimit.Limiter, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("rate limiter degraded", "error", err.Error())
		}
		if !ok {
			if m != nil {
				m.RateLimited.Inc()
			}
			httputil.RespondWithError(c, errors.NewTooManyRequests(nil))
			return
		}
		c.Next()
	}
}
