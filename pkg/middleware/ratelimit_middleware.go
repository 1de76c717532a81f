package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/odinbook/pkg/ratelimit"
)

// RateLimitMiddleware throttles per client IP. Limiter failures are logged
// and the request is let through.
func RateLimitMiddleware(limiter ratelimit.Limiter, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			log.WarnContext(c.Request.Context(), "rate limiter unavailable", "error", err, "client_ip", ip)
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
