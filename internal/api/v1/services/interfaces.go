package services

import (
	"context"

	"video-transcriber/internal/api/v1/dto"
)

// TranscriptionService drives a video through the transcription pipeline and
// keeps its stored status in step.
type TranscriptionService interface {
	// Transcribe returns the cached transcription when one exists, otherwise
	// runs the pipeline and persists the outcome.
	Transcribe(ctx context.Context, videoID string) (*dto.TranscribeResponse, error)
	// GetStatus reads the stored status without side effects
	GetStatus(ctx context.Context, videoID string) (*dto.TranscriptionStatusResponse, error)
}

// RequestRecorder counts request outcomes; *metrics.Metrics implements it
type RequestRecorder interface {
	RecordRequest(result string)
	RecordError(err error)
}
