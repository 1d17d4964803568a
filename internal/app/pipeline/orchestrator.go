package pipeline

import (
	"context"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"video-transcriber/internal/app/api"
	"video-transcriber/internal/app/audio"
	apperrors "video-transcriber/internal/app/errors"
	"video-transcriber/internal/app/model"
	"video-transcriber/internal/app/util/files"
	"video-transcriber/internal/downloader"
)

// Stage names one step of a pipeline run
type Stage string

const (
	StageFetch      Stage = "fetch"
	StageExtract    Stage = "extract"
	StageTranscribe Stage = "transcribe"
)

// Stages lists the stages in execution order
var Stages = []Stage{StageFetch, StageExtract, StageTranscribe}

// stageKinds tags untyped stage errors
var stageKinds = map[Stage]apperrors.Kind{
	StageFetch:      apperrors.KindFetch,
	StageExtract:    apperrors.KindExtraction,
	StageTranscribe: apperrors.KindTranscription,
}

// Observer is notified around every stage and at the end of a run.
// Implementations must be safe for concurrent use.
type Observer interface {
	StageStarted(stage Stage)
	StageFinished(stage Stage, elapsed time.Duration, err error)
	RunFinished(elapsed time.Duration, err error)
}

// Runner is the orchestrator contract consumed by the request layer
type Runner interface {
	Run(ctx context.Context, videoURL string) (*model.TranscriptionResult, error)
}

// Job is the state of a single Run call. It is never shared.
type Job struct {
	URL       string
	VideoPath string
	AudioPath string
	Result    *model.TranscriptionResult
}

// allocated returns the temp paths handed out so far
func (j *Job) allocated() []string {
	paths := make([]string, 0, 2)
	if j.VideoPath != "" {
		paths = append(paths, j.VideoPath)
	}
	if j.AudioPath != "" {
		paths = append(paths, j.AudioPath)
	}
	return paths
}

// Orchestrator sequences fetch, extract and transcribe
type Orchestrator struct {
	store       files.TempStore
	fetcher     downloader.Fetcher
	extractor   audio.Extractor
	transcriber api.Transcriber
	audioExt    string
	observers   []Observer
	logger      *zap.Logger
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithObservers adds stage observers
func WithObservers(observers ...Observer) Option {
	return func(o *Orchestrator) {
		o.observers = append(o.observers, observers...)
	}
}

// WithAudioFormat sets the extension of the extracted audio file, which also
// selects the encoder. Defaults to mp3.
func WithAudioFormat(format string) Option {
	return func(o *Orchestrator) {
		if format != "" {
			o.audioExt = "." + strings.TrimPrefix(format, ".")
		}
	}
}

// NewOrchestrator wires the pipeline stages together
func NewOrchestrator(
	store files.TempStore,
	fetcher downloader.Fetcher,
	extractor audio.Extractor,
	transcriber api.Transcriber,
	logger *zap.Logger,
	opts ...Option,
) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := &Orchestrator{
		store:       store,
		fetcher:     fetcher,
		extractor:   extractor,
		transcriber: transcriber,
		audioExt:    ".mp3",
		logger:      logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run downloads the video, extracts its audio and transcribes it. Every temp
// path allocated along the way is released exactly once before Run returns,
// whatever the outcome. No stage is retried.
func (o *Orchestrator) Run(ctx context.Context, videoURL string) (result *model.TranscriptionResult, err error) {
	job := &Job{URL: videoURL}
	start := time.Now()

	defer func() {
		if paths := job.allocated(); len(paths) > 0 {
			o.store.Release(paths...)
		}
		elapsed := time.Since(start)
		for _, obs := range o.observers {
			obs.RunFinished(elapsed, err)
		}
		if err != nil {
			o.logger.Warn("transcription pipeline failed",
				zap.String("kind", string(apperrors.KindOf(err))),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
		}
	}()

	job.VideoPath, err = o.store.AllocatePath("video", videoExt(videoURL))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindFetch, "failed to allocate video file")
	}
	if err = o.stage(StageFetch, func() error {
		return o.fetcher.Fetch(ctx, job.URL, job.VideoPath)
	}); err != nil {
		return nil, err
	}

	job.AudioPath, err = o.store.AllocatePath("audio", o.audioExt)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindExtraction, "failed to allocate audio file")
	}
	if err = o.stage(StageExtract, func() error {
		return o.extractor.Extract(ctx, job.VideoPath, job.AudioPath)
	}); err != nil {
		return nil, err
	}

	if err = o.stage(StageTranscribe, func() error {
		res, terr := o.transcriber.Transcribe(ctx, job.AudioPath)
		if terr != nil {
			return terr
		}
		if res == nil {
			return apperrors.New(apperrors.KindTranscription, "empty transcription response")
		}
		job.Result = res
		return nil
	}); err != nil {
		return nil, err
	}

	o.logger.Info("transcription pipeline finished",
		zap.Int("chars", len(job.Result.Text)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return job.Result, nil
}

func (o *Orchestrator) stage(stage Stage, fn func() error) error {
	for _, obs := range o.observers {
		obs.StageStarted(stage)
	}
	start := time.Now()
	err := fn()
	if err != nil && apperrors.KindOf(err) == apperrors.KindUnknown {
		err = apperrors.Wrap(err, stageKinds[stage], string(stage)+" stage failed")
	}
	elapsed := time.Since(start)
	for _, obs := range o.observers {
		obs.StageFinished(stage, elapsed, err)
	}
	o.logger.Debug("pipeline stage finished",
		zap.String("stage", string(stage)),
		zap.Duration("elapsed", elapsed),
		zap.Bool("ok", err == nil),
	)
	return err
}

// videoExt keeps the source container's extension so ffmpeg can probe it by
// name; anything unrecognisable falls back to .mp4.
func videoExt(videoURL string) string {
	u, err := url.Parse(videoURL)
	if err != nil {
		return ".mp4"
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" || len(ext) > 6 {
		return ".mp4"
	}
	return ext
}
