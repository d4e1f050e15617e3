// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the standard JSON error envelope and stops the
// handler chain.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
	c.Abort()
}
