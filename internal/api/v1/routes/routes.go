package routes

import (
	"github.com/gin-gonic/gin"
	"video-transcriber/internal/api/v1/handlers"
	"video-transcriber/internal/api/v1/services"
)

// ServiceContainer holds the services the routes are bound to
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
}

// RegisterRoutes registers the transcription routes
func RegisterRoutes(router gin.IRoutes, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)

	router.POST("/transcribe", transcriptionHandler.Transcribe)
	router.GET("/videos/:id/transcription", transcriptionHandler.GetStatus)
}
