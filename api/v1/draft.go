package v1

import (
	"net/http"

	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// DraftController stores unsaved material selections per environment
type DraftController struct {
	draftService *services.DraftService
}

// NewDraftController creates a new draft controller
func NewDraftController(draftService *services.DraftService) *DraftController {
	return &DraftController{draftService: draftService}
}

// RegisterRoutes registers draft routes
func (ctl *DraftController) RegisterRoutes(router *gin.RouterGroup) {
	drafts := router.Group("/rascunhos/ambientes")
	{
		drafts.GET("/:id/", ctl.GetDraft)
		drafts.PUT("/:id/", ctl.SaveDraft)
		drafts.DELETE("/:id/", ctl.DeleteDraft)
	}
}

type draftBody struct {
	Selections map[string]string `json:"selecoes" binding:"required"`
}

func (ctl *DraftController) GetDraft(c *gin.Context) {
	draft, err := ctl.draftService.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (ctl *DraftController) SaveDraft(c *gin.Context) {
	var body draftBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	draft, err := ctl.draftService.SaveDraft(c.Request.Context(), c.Param("id"), body.Selections)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (ctl *DraftController) DeleteDraft(c *gin.Context) {
	if err := ctl.draftService.DeleteDraft(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
