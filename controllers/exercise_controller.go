package controllers

import (
	"net/http"

	"ExerciseTracker/models"
	"ExerciseTracker/services"
	"ExerciseTracker/utils"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	ExerciseService *services.ExerciseService
}

func NewExerciseController(exerciseService *services.ExerciseService) *ExerciseController {
	return &ExerciseController{ExerciseService: exerciseService}
}

// AddExercise handles POST /api/exercise/add
func (h *ExerciseController) AddExercise(c *gin.Context) {
	var req models.AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(utils.NewValidationError("Invalid request format"))
		return
	}

	exercise, err := h.ExerciseService.AddExercise(c.Request.Context(), req)
	if err != nil {
		c.Error(err) // Middleware akan menangani error ini
		return
	}

	utils.SuccessResponse(c, http.StatusOK, exercise)
}

// GetLog handles GET /api/exercise/log
func (h *ExerciseController) GetLog(c *gin.Context) {
	var query models.LogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.Error(utils.NewValidationError("Invalid request format"))
		return
	}

	logResp, err := h.ExerciseService.GetLog(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, logResp)
}
