package handlers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes serves the landing page and its static assets.
func RegisterPageRoutes(router *gin.Engine, staticDir, viewsDir string) {
	if staticDir != "" {
		router.Static("/public", staticDir)
	}
	router.GET("/", func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache")
		c.File(filepath.Join(viewsDir, "index.html"))
	})
}
