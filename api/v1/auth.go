package v1

import (
	"errors"
	"net/http"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// AuthController issues token pairs
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers the token routes
func (ctl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	token := router.Group("/token")
	{
		token.POST("/", ctl.Login)
		token.POST("/refresh/", ctl.Refresh)
	}
}

// Login exchanges credentials for an access/refresh pair
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	pair, err := ctl.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "No active account found with the given credentials"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh exchanges a refresh token for a new access token
func (ctl *AuthController) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	access, err := ctl.authService.Refresh(req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, access)
}
