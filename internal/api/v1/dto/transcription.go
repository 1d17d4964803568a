package dto

import (
	"strings"
	"time"

	apperrors "video-transcriber/internal/app/errors"
	"video-transcriber/internal/app/model"
)

// TranscribeRequest is the body of POST /transcribe
type TranscribeRequest struct {
	VideoID string `json:"videoId" binding:"required" example:"v1"`
}

// Validate rejects blank ids that pass the required tag
func (r *TranscribeRequest) Validate() error {
	r.VideoID = strings.TrimSpace(r.VideoID)
	if r.VideoID == "" {
		return apperrors.ErrMissingVideoID
	}
	return nil
}

// TranscribeResponse is returned for both fresh and cached transcriptions
type TranscribeResponse struct {
	Success       bool   `json:"success" example:"true"`
	Transcription string `json:"transcription" example:"hello world"`
	Status        string `json:"status" example:"COMPLETED"`
	Duration      *int   `json:"duration,omitempty" example:"12"`
	Cached        bool   `json:"cached,omitempty" example:"false"`
}

// NewTranscribeResponse builds the response for a fresh run
func NewTranscribeResponse(result *model.TranscriptionResult) *TranscribeResponse {
	resp := &TranscribeResponse{
		Success:       true,
		Transcription: result.Text,
		Status:        string(model.StatusCompleted),
	}
	if d, ok := result.RoundedDuration(); ok {
		resp.Duration = &d
	}
	return resp
}

// NewCachedResponse builds the response for a stored transcription
func NewCachedResponse(video *model.Video) *TranscribeResponse {
	return &TranscribeResponse{
		Success:       true,
		Transcription: *video.Transcription,
		Status:        string(video.TranscriptionStatus),
		Duration:      video.Duration,
		Cached:        true,
	}
}

// TranscriptionStatusResponse is returned by GET /videos/{id}/transcription
type TranscriptionStatusResponse struct {
	VideoID       string    `json:"videoId" example:"v1"`
	Status        string    `json:"status" example:"PROCESSING"`
	Transcription *string   `json:"transcription,omitempty"`
	Duration      *int      `json:"duration,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewTranscriptionStatusResponse converts a stored video
func NewTranscriptionStatusResponse(video *model.Video) *TranscriptionStatusResponse {
	return &TranscriptionStatusResponse{
		VideoID:       video.ID,
		Status:        string(video.TranscriptionStatus),
		Transcription: video.Transcription,
		Duration:      video.Duration,
		UpdatedAt:     video.UpdatedAt,
	}
}
