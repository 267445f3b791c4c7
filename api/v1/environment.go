package v1

import (
	"net/http"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// EnvironmentController handles environment-related API endpoints
type EnvironmentController struct {
	environmentService *services.EnvironmentService
	pageSize           int
}

// NewEnvironmentController creates a new environment controller
func NewEnvironmentController(environmentService *services.EnvironmentService, pageSize int) *EnvironmentController {
	return &EnvironmentController{environmentService: environmentService, pageSize: pageSize}
}

// RegisterRoutes registers environment routes
func (ctl *EnvironmentController) RegisterRoutes(router *gin.RouterGroup) {
	environments := router.Group("/ambientes")
	{
		environments.GET("/", ctl.ListEnvironments)
		environments.POST("/", ctl.CreateEnvironment)
		environments.GET("/:id/", ctl.GetEnvironment)
		environments.PUT("/:id/", ctl.UpdateEnvironment)
		environments.DELETE("/:id/", ctl.DeleteEnvironment)
	}
}

// ListEnvironments retrieves environments, filtered by ?projeto= when given
func (ctl *EnvironmentController) ListEnvironments(c *gin.Context) {
	req := pageRequest(c, ctl.pageSize)
	environments, total, err := ctl.environmentService.ListEnvironments(c.Query("projeto"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPage(c, environments, total, req))
}

// GetEnvironment retrieves a specific environment
func (ctl *EnvironmentController) GetEnvironment(c *gin.Context) {
	env, err := ctl.environmentService.GetEnvironment(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

// CreateEnvironment creates a new environment
func (ctl *EnvironmentController) CreateEnvironment(c *gin.Context) {
	var req dto.EnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	env, err := ctl.environmentService.CreateEnvironment(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, env)
}

// UpdateEnvironment replaces an environment
func (ctl *EnvironmentController) UpdateEnvironment(c *gin.Context) {
	var req dto.EnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	env, err := ctl.environmentService.UpdateEnvironment(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

// DeleteEnvironment deletes an environment and its materials
func (ctl *EnvironmentController) DeleteEnvironment(c *gin.Context) {
	if err := ctl.environmentService.DeleteEnvironment(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
