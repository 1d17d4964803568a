package converter

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"video-transcriber/internal/api/v1/dto"
)

// VideoTranscriber runs the request controller for one video
type VideoTranscriber interface {
	Transcribe(ctx context.Context, videoID string) (*dto.TranscribeResponse, error)
}

// Outcome is the result of one video in a batch
type Outcome struct {
	VideoID  string
	Response *dto.TranscribeResponse
	Err      error
}

type Converter struct {
	transcriber VideoTranscriber
	progress    *ProgressManager
	logger      *zap.Logger
}

func NewConverter(transcriber VideoTranscriber, progress *ProgressManager, logger *zap.Logger) *Converter {
	if progress == nil {
		progress = NewProgressManager(ProgressConfig{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		transcriber: transcriber,
		progress:    progress,
		logger:      logger,
	}
}

// Convert transcribes videoIDs with at most parallel runs in flight. One
// failure does not stop the batch; outcomes keep the input order.
func (c *Converter) Convert(ctx context.Context, videoIDs []string, parallel int) []Outcome {
	outcomes := make([]Outcome, len(videoIDs))
	if len(videoIDs) == 0 {
		return outcomes
	}
	if parallel < 1 {
		parallel = 1
	}

	progressBar := c.progress.CreateBar(len(videoIDs), "Transcribing videos")

	var wg sync.WaitGroup
	sem := make(chan struct{}, parallel)

	for i, id := range videoIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			defer progressBar.Increment()

			sem <- struct{}{}
			resp, err := c.transcriber.Transcribe(ctx, id)
			<-sem

			outcomes[i] = Outcome{VideoID: id, Response: resp, Err: err}
			if err != nil {
				c.logger.Error("transcription failed", zap.String("video_id", id), zap.Error(err))
				return
			}
			c.logger.Info("transcription ready",
				zap.String("video_id", id),
				zap.Bool("cached", resp.Cached),
			)
		}(i, id)
	}
	wg.Wait()
	c.progress.Wait()
	return outcomes
}

// Close stops any bars still drawing
func (c *Converter) Close() {
	c.progress.Shutdown()
}
