package middleware

import (
	"net/http"
	"strings"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID = "userId"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// TokenValidator validates a signed token of the given type
type TokenValidator interface {
	ValidateToken(token, tokenType string) (*dto.TokenClaims, error)
}

// AuthMiddleware requires a valid access token in the Authorization header
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}

		claims, err := validator.ValidateToken(parts[1], dto.TokenTypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Given token not valid for any token type",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
