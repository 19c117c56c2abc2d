package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONMessage sends a response carrying only a human-readable message,
// matching the dashboard's expected wire format.
func JSONMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// JSONError sends a message response for a failed request and logs the
// underlying error with the handler context.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{"message": message})
	Warn("request failed", map[string]any{
		"path":   c.Request.URL.Path,
		"status": status,
		"error":  err.Error(),
	})
}
