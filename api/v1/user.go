package v1

import (
	"net/http"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

// UserController administers accounts. Every route requires the admin role.
type UserController struct {
	userService *services.UserService
	pageSize    int
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService, pageSize int) *UserController {
	return &UserController{userService: userService, pageSize: pageSize}
}

// RegisterRoutes registers user admin routes
func (ctl *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/usuarios-admin")
	{
		users.GET("/", ctl.ListUsers)
		users.POST("/", ctl.CreateUser)
		users.PATCH("/:id/", ctl.UpdateUser)
		users.DELETE("/:id/", ctl.DeleteUser)
	}
}

func (ctl *UserController) ListUsers(c *gin.Context) {
	req := pageRequest(c, ctl.pageSize)
	users, total, err := ctl.userService.ListUsers(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPage(c, users, total, req))
}

func (ctl *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := ctl.userService.CreateUser(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (ctl *UserController) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := ctl.userService.UpdateUser(actorFrom(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) DeleteUser(c *gin.Context) {
	if err := ctl.userService.DeleteUser(actorFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
