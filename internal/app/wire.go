//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"
	"video-transcriber/internal/api/v1/services"
	"video-transcriber/internal/app/metrics"
	"video-transcriber/internal/app/pipeline"
	"video-transcriber/internal/app/repository"
)

var pipelineSet = wire.NewSet(
	provideAPIKeys,
	providePipelineConfig,
	provideVideoDAO,
	provideProcessingGuard,
	provideURLResolver,
	provideTranscriber,
	provideExtractor,
	provideFetcher,
	provideTempStore,
	metrics.New,
	provideOrchestrator,
	wire.Bind(new(pipeline.Runner), new(*pipeline.Orchestrator)),
	wire.Bind(new(services.RequestRecorder), new(*metrics.Metrics)),
	services.NewTranscriptionService,
	wire.Bind(new(services.TranscriptionService), new(*services.TranscriptionServiceImpl)),
)

// InitializeApp wires the full pipeline. progress may be nil.
func InitializeApp(ctx context.Context, path ConfigPath, logger *zap.Logger, progress pipeline.Observer) (*App, func(), error) {
	wire.Build(
		pipelineSet,
		provideServer,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}

// InitializeVideoDAO opens only the record store
func InitializeVideoDAO(ctx context.Context, logger *zap.Logger) (repository.VideoDAO, func(), error) {
	wire.Build(provideVideoDAO)
	return nil, nil, nil
}
