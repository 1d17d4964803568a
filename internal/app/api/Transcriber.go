package api

import (
	"context"

	"video-transcriber/internal/app/model"
)

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*model.TranscriptionResult, error)
}
