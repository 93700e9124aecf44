package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aidt-dashboard-api/internal/service"
)

const unmatchedRoute = "unmatched"

// Metrics records request duration and counts per route template. Paths in skip
// (typically /metrics and /health) are not recorded.
func Metrics(metricsSvc *service.MetricsService, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, path := range skip {
		skipped[path] = struct{}{}
	}
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		if _, ok := skipped[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		// Raw paths would give every teacher ID its own series.
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
