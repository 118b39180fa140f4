package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAPIKeyHeader is the shared-secret header for admin endpoints
const AdminAPIKeyHeader = "admin-api-key"

// AdminAuthMiddleware guards admin endpoints with a static shared secret.
// The comparison is constant time.
func AdminAuthMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminAPIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid admin API key",
			})
			return
		}
		c.Next()
	}
}
