package handlers

import (
	"ExerciseTracker/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterExerciseRoutes sets up the /api/exercise routes
func RegisterExerciseRoutes(router *gin.RouterGroup, userController *controllers.UserController, exerciseController *controllers.ExerciseController) {
	exerciseGroup := router.Group("/exercise")
	{
		exerciseGroup.POST("/new-user", userController.CreateUser)
		exerciseGroup.GET("/users", userController.GetUsers)
		exerciseGroup.POST("/add", exerciseController.AddExercise)
		exerciseGroup.GET("/log", exerciseController.GetLog)
	}
}
