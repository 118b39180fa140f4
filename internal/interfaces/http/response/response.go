package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "bitcoin-wallet.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error translates a domain error to its HTTP status and the JSON body
// {"error": "<message>"}. Anything unmapped is a generic server error.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

// ValidationError reports a malformed request body
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": message})
}
