package controllers

import (
	"net/http"

	"ExerciseTracker/models"
	"ExerciseTracker/services"
	"ExerciseTracker/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

// CreateUser handles POST /api/exercise/new-user
func (h *UserController) CreateUser(c *gin.Context) {
	var req models.NewUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(utils.NewValidationError("no username given"))
		return
	}

	user, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err) // Middleware akan menangani error ini
		return
	}

	utils.SuccessResponse(c, http.StatusOK, user)
}

// GetUsers handles GET /api/exercise/users
func (h *UserController) GetUsers(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, users)
}
