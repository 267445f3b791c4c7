package v1

import (
	"net/http"

	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// LogController serves the activity log
type LogController struct {
	logService    *services.LogService
	exportService *services.ExportService
	pageSize      int
}

// NewLogController creates a new log controller
func NewLogController(logService *services.LogService, exportService *services.ExportService, pageSize int) *LogController {
	return &LogController{logService: logService, exportService: exportService, pageSize: pageSize}
}

// RegisterRoutes registers log routes
func (ctl *LogController) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("/", ctl.ListLogs)
		logs.GET("/exportar/", ctl.ExportLogs)
	}
}

// ListLogs returns a page of log entries, newest first
func (ctl *LogController) ListLogs(c *gin.Context) {
	req := pageRequest(c, ctl.pageSize)
	entries, total, err := ctl.logService.ListLogs(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPage(c, entries, total, req))
}

// ExportLogs downloads the whole log as an XLSX workbook
func (ctl *LogController) ExportLogs(c *gin.Context) {
	f, filename, err := ctl.exportService.ExportLogs()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Transfer-Encoding", "binary")
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
