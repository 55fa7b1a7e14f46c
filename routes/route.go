package routes

import (
	"ExerciseTracker/controllers"
	"ExerciseTracker/handlers"
	"ExerciseTracker/middleware"
	"ExerciseTracker/repository"
	"ExerciseTracker/services"

	"github.com/gin-gonic/gin"
)

// Options controls what NewRouter wires around the API.
type Options struct {
	Clock       services.Clock
	StaticDir   string
	ViewsDir    string
	Middlewares []gin.HandlerFunc
}

// NewRouter builds the gin engine for the given store.
func NewRouter(users repository.UserRepository, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(opts.Middlewares...)

	RegisterRoutes(r, users, opts)
	return r
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, users repository.UserRepository, opts Options) {
	userController := controllers.NewUserController(services.NewUserService(users, opts.Clock))
	exerciseController := controllers.NewExerciseController(services.NewExerciseService(users, opts.Clock))

	if opts.ViewsDir != "" {
		handlers.RegisterPageRoutes(router, opts.StaticDir, opts.ViewsDir)
	}

	apiRoutes := router.Group("/api")
	{
		handlers.RegisterExerciseRoutes(apiRoutes, userController, exerciseController)
	}
}
