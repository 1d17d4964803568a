package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"video-transcriber/internal/api/middleware"
	"video-transcriber/internal/api/v1/dto"
	"video-transcriber/internal/api/v1/services"
	apperrors "video-transcriber/internal/app/errors"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Transcribe handles POST /transcribe
//
// @Summary Transcribe a video
// @Description Returns the stored transcription when the video is already COMPLETED, otherwise downloads the video, extracts its audio, transcribes it and stores the result. The request blocks until the pipeline finishes.
// @Tags transcriptions
// @Accept json
// @Produce json
// @Param request body dto.TranscribeRequest true "Video to transcribe"
// @Success 200 {object} dto.TranscribeResponse "Transcription (fresh or cached)"
// @Failure 400 {object} errors.APIError "videoId is missing"
// @Failure 404 {object} errors.APIError "Video not found"
// @Failure 409 {object} errors.APIError "Transcription already in progress (guarded modes only)"
// @Failure 500 {object} errors.APIError "Configuration, pipeline or storage failure"
// @Router /transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	var req dto.TranscribeRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	resp, err := h.service.Transcribe(c.Request.Context(), req.VideoID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStatus handles GET /videos/:id/transcription
//
// @Summary Get transcription status
// @Description Reads the stored status, text and duration of a video without starting a run
// @Tags transcriptions
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} dto.TranscriptionStatusResponse "Stored status"
// @Failure 404 {object} errors.APIError "Video not found"
// @Failure 500 {object} errors.APIError "Storage failure"
// @Router /videos/{id}/transcription [get]
func (h *TranscriptionHandler) GetStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		middleware.HandleError(c, apperrors.ErrMissingVideoID)
		return
	}

	resp, err := h.service.GetStatus(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
