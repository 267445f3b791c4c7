package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware creates a middleware that ensures the user has admin role
// This middleware should be used after AuthMiddleware
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from context (set by AuthMiddleware)
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}

		if roleStr, ok := role.(string); !ok || roleStr != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"detail": "You do not have permission to perform this action.",
			})
			return
		}

		c.Next()
	}
}
