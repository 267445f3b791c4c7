package v1

import (
	"net/http"

	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// StatsController serves dashboard counters
type StatsController struct {
	statsService *services.StatsService
}

// NewStatsController creates a new stats controller
func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// RegisterRoutes registers stats routes
func (ctl *StatsController) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.GET("/dashboard/", ctl.Dashboard)
		stats.GET("/mensais/", ctl.Monthly)
	}
}

// Dashboard returns project and material totals per status
func (ctl *StatsController) Dashboard(c *gin.Context) {
	data, err := ctl.statsService.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Monthly returns projects created per month over the last year
func (ctl *StatsController) Monthly(c *gin.Context) {
	data, err := ctl.statsService.Monthly()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
