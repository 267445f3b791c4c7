package v1

import (
	"github.com/Fernandolass/frontend-lab-eng-sub000/middleware"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// Services bundles the service layer the API is built on
type Services struct {
	Auth         *services.AuthService
	Projects     *services.ProjectService
	Environments *services.EnvironmentService
	Materials    *services.MaterialService
	Brands       *services.BrandService
	Logs         *services.LogService
	Export       *services.ExportService
	Stats        *services.StatsService
	PDF          *services.PDFService
	Users        *services.UserService
	Drafts       *services.DraftService
	PageSize     int
}

// RegisterRoutes registers all v1 API routes under router (mounted at /api)
func RegisterRoutes(router *gin.RouterGroup, svc Services) {
	// Token endpoints are public
	NewAuthController(svc.Auth).RegisterRoutes(router)

	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware(svc.Auth))
	NewProjectController(svc.Projects, svc.PDF, svc.PageSize).RegisterRoutes(authRouter)
	NewEnvironmentController(svc.Environments, svc.PageSize).RegisterRoutes(authRouter)
	NewMaterialController(svc.Materials, svc.PageSize).RegisterRoutes(authRouter)
	NewBrandController(svc.Brands, svc.PageSize).RegisterRoutes(authRouter)
	NewLogController(svc.Logs, svc.Export, svc.PageSize).RegisterRoutes(authRouter)
	NewStatsController(svc.Stats).RegisterRoutes(authRouter)
	NewDraftController(svc.Drafts).RegisterRoutes(authRouter)

	// Admin endpoints
	adminRouter := authRouter.Group("")
	adminRouter.Use(middleware.AdminMiddleware())
	NewUserController(svc.Users, svc.PageSize).RegisterRoutes(adminRouter)
}
