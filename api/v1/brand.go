package v1

import (
	"net/http"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// BrandController handles the marcas-descricao endpoints
type BrandController struct {
	brandService *services.BrandService
	pageSize     int
}

// NewBrandController creates a new brand controller
func NewBrandController(brandService *services.BrandService, pageSize int) *BrandController {
	return &BrandController{brandService: brandService, pageSize: pageSize}
}

// RegisterRoutes registers brand routes
func (ctl *BrandController) RegisterRoutes(router *gin.RouterGroup) {
	brands := router.Group("/marcas-descricao")
	{
		brands.GET("/", ctl.ListBrands)
		brands.POST("/", ctl.CreateBrand)
		brands.POST("/salvar/", ctl.SaveBrands)
		brands.PATCH("/:id/", ctl.PatchBrand)
		brands.DELETE("/:id/", ctl.DeleteBrand)
	}
}

func (ctl *BrandController) ListBrands(c *gin.Context) {
	req := pageRequest(c, ctl.pageSize)
	brands, total, err := ctl.brandService.ListBrands(c.Query("projeto"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPage(c, brands, total, req))
}

func (ctl *BrandController) CreateBrand(c *gin.Context) {
	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	brand, err := ctl.brandService.CreateBrand(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// SaveBrands upserts every row of a project at once
func (ctl *BrandController) SaveBrands(c *gin.Context) {
	var req dto.SaveBrandsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	brands, err := ctl.brandService.SaveBrands(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (ctl *BrandController) PatchBrand(c *gin.Context) {
	var req dto.BrandPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	brand, err := ctl.brandService.PatchBrand(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (ctl *BrandController) DeleteBrand(c *gin.Context) {
	if err := ctl.brandService.DeleteBrand(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
