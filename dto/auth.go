package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "token_type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenPair is returned by POST /api/token/
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest is the body of POST /api/token/refresh/
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// AccessToken is returned by POST /api/token/refresh/
type AccessToken struct {
	Access string `json:"access"`
}
