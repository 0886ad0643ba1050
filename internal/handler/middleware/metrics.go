package middleware

import (
	"strconv"

	"flightdesk/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts completed requests per route. The route template
// (not the raw path) is used as the label to keep cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	metrics.Register()
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
