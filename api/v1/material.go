package v1

import (
	"net/http"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// MaterialController handles material endpoints
type MaterialController struct {
	materialService *services.MaterialService
	pageSize        int
}

// NewMaterialController creates a new material controller
func NewMaterialController(materialService *services.MaterialService, pageSize int) *MaterialController {
	return &MaterialController{materialService: materialService, pageSize: pageSize}
}

// RegisterRoutes registers material routes
func (ctl *MaterialController) RegisterRoutes(router *gin.RouterGroup) {
	materials := router.Group("/materiais")
	{
		materials.GET("/", ctl.ListMaterials)
		materials.POST("/", ctl.CreateMaterial)
		materials.GET("/:id/", ctl.GetMaterial)
		materials.PATCH("/:id/", ctl.UpdateMaterial)
		materials.DELETE("/:id/", ctl.DeleteMaterial)
		materials.POST("/:id/aprovar/", ctl.ApproveMaterial)
		materials.POST("/:id/reprovar/", ctl.RejectMaterial)
	}
}

// ListMaterials supports ?ambiente= and ?projeto= filters
func (ctl *MaterialController) ListMaterials(c *gin.Context) {
	req := pageRequest(c, ctl.pageSize)
	materials, total, err := ctl.materialService.ListMaterials(dto.MaterialFilter{
		EnvironmentID: c.Query("ambiente"),
		ProjectID:     c.Query("projeto"),
		PageRequest:   req,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPage(c, materials, total, req))
}

// GetMaterial returns one material
func (ctl *MaterialController) GetMaterial(c *gin.Context) {
	material, err := ctl.materialService.GetMaterial(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

// CreateMaterial creates a pending material
func (ctl *MaterialController) CreateMaterial(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	material, err := ctl.materialService.CreateMaterial(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, material)
}

// UpdateMaterial applies a partial update
func (ctl *MaterialController) UpdateMaterial(c *gin.Context) {
	var req dto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	material, err := ctl.materialService.UpdateMaterial(actorFrom(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

// DeleteMaterial removes a material
func (ctl *MaterialController) DeleteMaterial(c *gin.Context) {
	if err := ctl.materialService.DeleteMaterial(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveMaterial approves a pending material
func (ctl *MaterialController) ApproveMaterial(c *gin.Context) {
	ctl.decide(c, true)
}

// RejectMaterial rejects a pending material; motivo is required
func (ctl *MaterialController) RejectMaterial(c *gin.Context) {
	ctl.decide(c, false)
}

func (ctl *MaterialController) decide(c *gin.Context, approve bool) {
	var req dto.DecisionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	material, err := ctl.materialService.DecideMaterial(actorFrom(c), c.Param("id"), approve, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}
