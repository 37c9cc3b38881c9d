package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/response"
)

// Trace tags the request context with a trace id, reusing X-Request-ID when present.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Next()
	}
}

// RateLimit rejects clients that exceed the per-IP budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := session.ExtractIP(c.Request)
		if err := m.limiter.Allow(ip); err != nil {
			m.l.Warnf(c.Request.Context(), "%s: %v", LogPrefixRateLimit, err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
