package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Project Lifecycle ---
	projectGroup := router.Group("/project")
	{
		projectGroup.POST("/generate", h.GenerateSite)   // Generate a new project from a prompt
		projectGroup.GET("/preview", h.PreviewProject)   // Live preview for HTML/CSS/JS projects
		projectGroup.GET("/download", h.DownloadProject) // Download the generated project as a zip
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
