package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"video-transcriber/internal/api/v1/dto"
	"video-transcriber/internal/app/metrics"
	"video-transcriber/internal/app/model"
	"video-transcriber/internal/app/pipeline"
	"video-transcriber/internal/app/repository"
	"video-transcriber/internal/app/repository/guard"
	"video-transcriber/internal/app/storage"
	"video-transcriber/internal/config"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	apiKeys  *config.APIKeys
	dao      repository.VideoDAO
	guard    guard.ProcessingGuard
	resolver storage.URLResolver
	runner   pipeline.Runner
	recorder RequestRecorder
	logger   *zap.Logger
}

// NewTranscriptionService creates a new transcription service. recorder may be nil.
func NewTranscriptionService(
	apiKeys *config.APIKeys,
	dao repository.VideoDAO,
	processingGuard guard.ProcessingGuard,
	resolver storage.URLResolver,
	runner pipeline.Runner,
	recorder RequestRecorder,
	logger *zap.Logger,
) *TranscriptionServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptionServiceImpl{
		apiKeys:  apiKeys,
		dao:      dao,
		guard:    processingGuard,
		resolver: resolver,
		runner:   runner,
		recorder: recorder,
		logger:   logger,
	}
}

// Transcribe implements TranscriptionService
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, videoID string) (resp *dto.TranscribeResponse, err error) {
	defer func() {
		if s.recorder == nil {
			return
		}
		switch {
		case err != nil:
			s.recorder.RecordError(err)
		case resp.Cached:
			s.recorder.RecordRequest(metrics.ResultCached)
		default:
			s.recorder.RecordRequest(metrics.ResultTranscribed)
		}
	}()

	// Nothing is read or written without a usable credential
	if err := config.RequireTranscriptionKey(s.apiKeys); err != nil {
		return nil, err
	}

	video, err := s.dao.Find(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if video.HasCachedTranscription() {
		s.logger.Debug("serving cached transcription", zap.String("video_id", videoID))
		return dto.NewCachedResponse(video), nil
	}

	release, err := s.guard.Acquire(ctx, videoID)
	if err != nil {
		return nil, err
	}
	defer release()

	log := s.logger.With(zap.String("video_id", videoID), zap.String("guard", s.guard.Mode()))
	log.Info("transcription started", zap.String("previous_status", string(video.TranscriptionStatus)))
	start := time.Now()

	result, err := s.run(ctx, video)
	if err != nil {
		s.markFailed(videoID, log)
		return nil, err
	}

	if err := s.dao.Update(ctx, videoID, model.CompletedUpdate(result)); err != nil {
		log.Error("failed to persist transcription", zap.Error(err))
		s.markFailed(videoID, log)
		return nil, err
	}

	log.Info("transcription completed",
		zap.Int("chars", len(result.Text)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return dto.NewTranscribeResponse(result), nil
}

func (s *TranscriptionServiceImpl) run(ctx context.Context, video *model.Video) (*model.TranscriptionResult, error) {
	videoURL, err := s.resolver.ResolveURL(ctx, video.FileKey)
	if err != nil {
		return nil, err
	}
	return s.runner.Run(ctx, videoURL)
}

// markFailed records FAILED without touching the stored transcription. It
// runs on a fresh context so a cancelled request still leaves a final status.
func (s *TranscriptionServiceImpl) markFailed(videoID string, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.dao.Update(ctx, videoID, model.StatusUpdate(model.StatusFailed)); err != nil {
		log.Error("failed to mark transcription as failed", zap.Error(err))
	}
}

// GetStatus implements TranscriptionService
func (s *TranscriptionServiceImpl) GetStatus(ctx context.Context, videoID string) (*dto.TranscriptionStatusResponse, error) {
	video, err := s.dao.Find(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return dto.NewTranscriptionStatusResponse(video), nil
}
