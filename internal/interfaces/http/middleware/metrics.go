package middleware

import (
	"github.com/gin-gonic/gin"

	"bitcoin-wallet.backend/pkg/metrics"
)

// MetricsMiddleware counts handled requests per method, route and status.
// The route template is used rather than the raw path to keep label
// cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status())
	}
}
