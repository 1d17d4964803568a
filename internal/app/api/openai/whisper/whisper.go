package whisper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	apperrors "video-transcriber/internal/app/errors"
	"video-transcriber/internal/app/model"
)

// Config holds the request settings for the OpenAI transcription endpoint
type Config struct {
	Model    string
	Language string
	Prompt   string
	Timeout  time.Duration
}

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	config Config
	logger *zap.Logger
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, config Config, logger *zap.Logger) *RemoteTranscriber {
	if config.Model == "" {
		config.Model = openai.Whisper1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteTranscriber{client: client, config: config, logger: logger}
}

// Transcribe uploads the whole audio file and asks for verbose JSON so the
// response carries the audio duration next to the text.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, audioPath string) (*model.TranscriptionResult, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindTranscription, "failed to read audio file")
	}

	if rt.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rt.config.Timeout)
		defer cancel()
	}

	// The file name's extension tells the service the media type
	req := openai.AudioRequest{
		Model:    rt.config.Model,
		FilePath: filepath.Base(audioPath),
		Reader:   bytes.NewReader(data),
		Format:   openai.AudioResponseFormatVerboseJSON,
		Language: rt.config.Language,
		Prompt:   rt.config.Prompt,
	}

	start := time.Now()
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindTranscription, describeAPIError(err))
	}

	result := &model.TranscriptionResult{Text: resp.Text}
	if resp.Duration > 0 {
		duration := resp.Duration
		result.DurationSeconds = &duration
	}

	rt.logger.Debug("transcription received",
		zap.Int("audio_bytes", len(data)),
		zap.Float64("duration", resp.Duration),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// describeAPIError gives the failure a short, user-facing description
func describeAPIError(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401:
			return "speech-to-text credential was rejected"
		case 413:
			return "audio file is too large for the speech-to-text service"
		case 429:
			return "speech-to-text rate limit exceeded"
		default:
			return fmt.Sprintf("speech-to-text service error (status %d)", apiErr.HTTPStatusCode)
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("speech-to-text request failed (status %d)", reqErr.HTTPStatusCode)
	}
	return "speech-to-text request failed"
}
