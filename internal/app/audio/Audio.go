package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"go.uber.org/zap"
	apperrors "video-transcriber/internal/app/errors"
)

// Extractor turns a local video file into a speech-optimized audio file.
type Extractor interface {
	Extract(ctx context.Context, videoPath, audioPath string) error
}

// CommandRunner runs an external process to completion and returns its
// captured stderr.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// Run implements CommandRunner
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stderr.Bytes(), err
}

// Options controls the ffmpeg encode
type Options struct {
	Binary     string
	SampleRate int
	Channels   int
	Bitrate    string
	Timeout    time.Duration
}

// DefaultOptions matches the speech service's preferred input: 16 kHz mono
// at a low bitrate.
func DefaultOptions() Options {
	return Options{
		Binary:     "ffmpeg",
		SampleRate: 16000,
		Channels:   1,
		Bitrate:    "32k",
	}
}

// FFmpegExtractor spawns one ffmpeg process per call
type FFmpegExtractor struct {
	opts   Options
	runner CommandRunner
	logger *zap.Logger
}

// NewFFmpegExtractor creates an extractor. Zero-valued options fall back to
// DefaultOptions; a nil runner uses os/exec.
func NewFFmpegExtractor(opts Options, runner CommandRunner, logger *zap.Logger) *FFmpegExtractor {
	def := DefaultOptions()
	if opts.Binary == "" {
		opts.Binary = def.Binary
	}
	if opts.SampleRate == 0 {
		opts.SampleRate = def.SampleRate
	}
	if opts.Channels == 0 {
		opts.Channels = def.Channels
	}
	if opts.Bitrate == "" {
		opts.Bitrate = def.Bitrate
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FFmpegExtractor{opts: opts, runner: runner, logger: logger}
}

// Args returns the ffmpeg arguments for the given input and output. The
// output codec follows the output file's extension.
func (e *FFmpegExtractor) Args(videoPath, audioPath string) []string {
	return []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ac", strconv.Itoa(e.opts.Channels),
		"-ar", strconv.Itoa(e.opts.SampleRate),
		"-b:a", e.opts.Bitrate,
		audioPath,
	}
}

// Extract runs ffmpeg and waits for it to exit. Tool diagnostics are logged,
// not returned.
func (e *FFmpegExtractor) Extract(ctx context.Context, videoPath, audioPath string) error {
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	stderr, err := e.runner.Run(ctx, e.opts.Binary, e.Args(videoPath, audioPath)...)
	if err != nil {
		e.logger.Debug("ffmpeg failed",
			zap.String("input", videoPath),
			zap.Error(err),
			zap.ByteString("stderr", tail(stderr, 2048)),
		)
		return apperrors.Wrap(err, apperrors.KindExtraction, apperrors.ErrExtractionFailed.Message())
	}

	e.logger.Debug("audio extracted",
		zap.String("output", audioPath),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// String describes the encode for logs
func (e *FFmpegExtractor) String() string {
	return fmt.Sprintf("%s %dHz %dch %s", e.opts.Binary, e.opts.SampleRate, e.opts.Channels, e.opts.Bitrate)
}

func tail(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[len(b)-n:]
}
