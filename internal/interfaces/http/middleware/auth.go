package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// APIKeyHeader is the bearer credential header for user endpoints
	APIKeyHeader = "x-api-key"
	// apiKeyContextKey is the gin context key the raw key is stored under
	apiKeyContextKey = "apiKey"
)

// APIKeyMiddleware extracts the caller's api key from the request header.
// Resolution of the key to a user is domain logic: an unknown or missing key
// surfaces as UserNotFound from the usecase, so the middleware never aborts.
func APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(apiKeyContextKey, c.GetHeader(APIKeyHeader))
		c.Next()
	}
}

// GetAPIKey gets the caller's api key from context
func GetAPIKey(c *gin.Context) string {
	key, _ := c.Get(apiKeyContextKey)
	s, _ := key.(string)
	return s
}
