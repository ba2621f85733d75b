package routes

import (
	"github.com/gin-gonic/gin"

	"echoscribe/internal/api/middleware"
	"echoscribe/internal/api/v1/handlers"
	"echoscribe/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	AuthService          services.AuthService
	TranscriptionService services.TranscriptionService
	TranscriptService    services.TranscriptService
}

// RegisterRoutes registers the API routes under the service root. The token
// endpoint is public; everything else sits behind bearer authentication.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	authHandler := handlers.NewAuthHandler(container.AuthService)
	router.POST("/token", authHandler.Token)

	protected := router.Group("")
	protected.Use(middleware.BearerAuth(container.AuthService))
	{
		transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
		protected.POST("/transcribe", transcriptionHandler.Transcribe)

		transcriptHandler := handlers.NewTranscriptHandler(container.TranscriptService)
		protected.POST("/save_transcript", transcriptHandler.Save)
	}
}
