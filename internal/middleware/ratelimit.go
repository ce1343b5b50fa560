package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"studyrooms/internal/config"
)

type rateLimiter struct {
	limiters sync.Map // client IP -> *rate.Limiter
	rps      rate.Limit
	burst    int
}

func (l *rateLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}

	lim := rate.NewLimiter(l.rps, l.burst)
	actual, _ := l.limiters.LoadOrStore(key, lim)
	return actual.(*rate.Limiter)
}

// RateLimit applies a per-client-IP token bucket to every request.
func RateLimit(cfg *config.Config) gin.HandlerFunc {
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 5
	}
	limiter := &rateLimiter{rps: rate.Limit(cfg.RateLimitRPS), burst: burst}

	return func(c *gin.Context) {
		if !limiter.getLimiter(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
