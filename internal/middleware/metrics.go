package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"studyrooms/internal/metrics"
)

// Metrics records request counts and latency per route. The route label uses
// the registered path template, not the raw URL, to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
