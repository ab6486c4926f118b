package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"corpsite.backend/internal/infrastructure/metrics"
)

// MetricsMiddleware observes request latency by route template. Unmatched
// paths share one label so scanners cannot blow up cardinality.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
