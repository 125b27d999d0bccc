package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/metrics"
)

// Metrics records every request under its route template, so /api/drafts/:id
// stays one series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
