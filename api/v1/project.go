package v1

import (
	"net/http"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// ProjectController handles project endpoints
type ProjectController struct {
	projectService *services.ProjectService
	pdfService     *services.PDFService
	pageSize       int
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService, pdfService *services.PDFService, pageSize int) *ProjectController {
	return &ProjectController{projectService: projectService, pdfService: pdfService, pageSize: pageSize}
}

// RegisterRoutes registers project routes
func (ctl *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projetos")
	{
		projects.GET("/", ctl.ListProjects)
		projects.POST("/", ctl.CreateProject)
		projects.GET("/:id/", ctl.GetProject)
		projects.PATCH("/:id/", ctl.UpdateProject)
		projects.POST("/:id/aprovar/", ctl.ApproveProject)
		projects.POST("/:id/reprovar/", ctl.RejectProject)
		projects.GET("/:id/gerar-pdf/", ctl.ProjectPDF)
	}
}

// ListProjects returns a page of projects, optionally filtered by ?status=
func (ctl *ProjectController) ListProjects(c *gin.Context) {
	req := pageRequest(c, ctl.pageSize)
	projects, total, err := ctl.projectService.ListProjects(dto.ProjectFilter{
		Status:      c.Query("status"),
		PageRequest: req,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPage(c, projects, total, req))
}

// CreateProject creates a pending project
func (ctl *ProjectController) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	project, err := ctl.projectService.CreateProject(actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GetProject returns a project with environments, materials and brands
func (ctl *ProjectController) GetProject(c *gin.Context) {
	project, err := ctl.projectService.GetProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject applies a partial update
func (ctl *ProjectController) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	project, err := ctl.projectService.UpdateProject(actorFrom(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ApproveProject marks a pending project as approved
func (ctl *ProjectController) ApproveProject(c *gin.Context) {
	ctl.decide(c, true)
}

// RejectProject marks a pending project as rejected
func (ctl *ProjectController) RejectProject(c *gin.Context) {
	ctl.decide(c, false)
}

func (ctl *ProjectController) decide(c *gin.Context, approve bool) {
	var req dto.DecisionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	project, err := ctl.projectService.DecideProject(actorFrom(c), c.Param("id"), approve, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ProjectPDF renders the project specification as a PDF download
func (ctl *ProjectController) ProjectPDF(c *gin.Context) {
	doc, filename, err := ctl.pdfService.ProjectPDF(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
