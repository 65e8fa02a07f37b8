package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/nikhil-s1nha/productivity/pkg/response"
)

// RateLimit enforces a per-client-IP request rate on the wrapped
// routes. Limiter state lives in an expiring LRU so idle clients age
// out on their own.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
