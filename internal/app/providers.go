package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"video-transcriber/internal/api/server"
	"video-transcriber/internal/api/v1/services"
	"video-transcriber/internal/app/api"
	"video-transcriber/internal/app/api/openai"
	"video-transcriber/internal/app/api/openai/whisper"
	"video-transcriber/internal/app/audio"
	"video-transcriber/internal/app/metrics"
	"video-transcriber/internal/app/pipeline"
	"video-transcriber/internal/app/repository"
	"video-transcriber/internal/app/repository/guard"
	"video-transcriber/internal/app/repository/pg"
	"video-transcriber/internal/app/repository/sqlite"
	"video-transcriber/internal/app/storage"
	"video-transcriber/internal/app/util/files"
	"video-transcriber/internal/config"
	"video-transcriber/internal/downloader"
)

// ConfigPath is the optional YAML pipeline file; empty means defaults
type ConfigPath string

// App is everything a command needs once wired
type App struct {
	Config  *config.PipelineConfig
	DAO     repository.VideoDAO
	Service services.TranscriptionService
	Metrics *metrics.Metrics
	Server  *server.Server
}

func provideAPIKeys() (*config.APIKeys, error) {
	return config.GetAPIKeys()
}

func providePipelineConfig(path ConfigPath) (*config.PipelineConfig, error) {
	return config.LoadPipelineConfig(string(path))
}

// provideVideoDAO opens the record store selected by DATABASE_DRIVER and
// makes sure the videos table exists.
func provideVideoDAO(ctx context.Context, logger *zap.Logger) (repository.VideoDAO, func(), error) {
	dbConfig := config.GetDatabaseConfig()

	var (
		dao repository.VideoDAO
		err error
	)
	switch dbConfig.Driver {
	case "sqlite3", "sqlite":
		dao, err = sqlite.NewSQLiteDB(dbConfig.DSN)
	case "postgres", "pg":
		dao, err = pg.NewPostgresDB(dbConfig.DSN)
	default:
		return nil, nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", dbConfig.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := dao.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}
	if err := dao.EnsureSchema(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Debug("record store ready", zap.String("driver", dbConfig.Driver))
	return dao, cleanup, nil
}

func provideProcessingGuard(
	ctx context.Context,
	cfg *config.PipelineConfig,
	dao repository.VideoDAO,
	logger *zap.Logger,
) (guard.ProcessingGuard, func(), error) {
	switch cfg.ProcessingGuard {
	case config.GuardRecord:
		return guard.NewRecord(dao), func() {}, nil
	case config.GuardRedis:
		client, err := guard.NewRedisClient(ctx, config.GetRedisConfig())
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close redis client", zap.Error(err))
			}
		}
		return guard.NewRedis(dao, client, cfg.GuardTTL, logger), cleanup, nil
	default:
		return guard.NewNone(dao), func() {}, nil
	}
}

func provideURLResolver() (storage.URLResolver, error) {
	return storage.NewResolver(config.GetStorageConfig())
}

func provideTranscriber(apiKeys *config.APIKeys, cfg *config.PipelineConfig, logger *zap.Logger) api.Transcriber {
	client := openai.NewClient(apiKeys.OpenAI, apiKeys.OpenAIBaseURL)
	return whisper.NewRemoteTranscriber(client, whisper.Config{
		Model:    cfg.Transcribe.Model,
		Language: cfg.Transcribe.Language,
		Prompt:   cfg.Transcribe.Prompt,
		Timeout:  cfg.Transcribe.Timeout,
	}, logger)
}

func provideExtractor(cfg *config.PipelineConfig, logger *zap.Logger) audio.Extractor {
	return audio.NewFFmpegExtractor(audio.Options{
		Binary:     cfg.Extract.Binary,
		SampleRate: cfg.Extract.SampleRate,
		Channels:   cfg.Extract.Channels,
		Bitrate:    cfg.Extract.Bitrate,
		Timeout:    cfg.Extract.Timeout,
	}, nil, logger)
}

func provideFetcher(cfg *config.PipelineConfig, logger *zap.Logger) downloader.Fetcher {
	return downloader.NewHTTPFetcher(nil, cfg.Fetch.Timeout, logger)
}

func provideTempStore(cfg *config.PipelineConfig, logger *zap.Logger) (files.TempStore, error) {
	return files.NewDirStore(cfg.ScratchDir, logger)
}

// provideOrchestrator always reports to metrics; progress is optional.
func provideOrchestrator(
	cfg *config.PipelineConfig,
	store files.TempStore,
	fetcher downloader.Fetcher,
	extractor audio.Extractor,
	transcriber api.Transcriber,
	m *metrics.Metrics,
	progress pipeline.Observer,
	logger *zap.Logger,
) *pipeline.Orchestrator {
	observers := []pipeline.Observer{m}
	if progress != nil {
		observers = append(observers, progress)
	}
	return pipeline.NewOrchestrator(store, fetcher, extractor, transcriber, logger,
		pipeline.WithObservers(observers...),
		pipeline.WithAudioFormat(cfg.Extract.Format),
	)
}

func provideServer(service services.TranscriptionService, m *metrics.Metrics, logger *zap.Logger) *server.Server {
	return server.NewServer(config.GetServerConfig(), service, m.Handler(), logger)
}
