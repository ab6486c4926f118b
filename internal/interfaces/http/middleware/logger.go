package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"corpsite.backend/pkg/logger"
)

// LoggerMiddleware logs HTTP requests using the structured logger. Paths in
// skip, such as probes, are not logged.
func LoggerMiddleware(skip ...string) gin.HandlerFunc {
	quiet := make(map[string]bool, len(skip))
	for _, p := range skip {
		quiet[p] = true
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if quiet[path] {
			return
		}
		if raw != "" {
			path = path + "?" + raw
		}

		// RequestIDMiddleware has already put the id on the request context
		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}
