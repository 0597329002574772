package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// apiError is the envelope every non-200 response uses.
type apiError struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers panics anywhere in the request chain. The costing
// contract is degrade-never-throw inside the engine; this middleware extends
// that to the edge, turning an unexpected panic into a 500 instead of a
// dropped connection.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("panic recovered", zap.Any("panic", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, apiError{
					Message: "internal server error",
					Details: "the costing service hit an unexpected error; retry the request",
				})
			}
		}()
		c.Next()
	}
}

// JSONError logs and writes a structured error response.
func JSONError(c *gin.Context, status int, message, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, apiError{Message: message, Details: details})
}
