package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"video-transcriber/internal/config"
	apperrors "video-transcriber/internal/app/errors"
	"video-transcriber/internal/app/repository"
)

// ProcessingGuard moves a video to PROCESSING before a pipeline run. The
// returned release func must be called once the run has finished.
type ProcessingGuard interface {
	Acquire(ctx context.Context, videoID string) (release func(), err error)
	Mode() string
}

func noop() {}

// None writes PROCESSING unconditionally. Two concurrent requests for the
// same video both proceed.
type None struct {
	dao repository.VideoDAO
}

func NewNone(dao repository.VideoDAO) *None {
	return &None{dao: dao}
}

func (g *None) Acquire(ctx context.Context, videoID string) (func(), error) {
	if err := g.dao.MarkProcessing(ctx, videoID, false); err != nil {
		return nil, err
	}
	return noop, nil
}

func (g *None) Mode() string { return config.GuardNone }

// Record relies on a conditional update of the status column
type Record struct {
	dao repository.VideoDAO
}

func NewRecord(dao repository.VideoDAO) *Record {
	return &Record{dao: dao}
}

func (g *Record) Acquire(ctx context.Context, videoID string) (func(), error) {
	if err := g.dao.MarkProcessing(ctx, videoID, true); err != nil {
		return nil, err
	}
	return noop, nil
}

func (g *Record) Mode() string { return config.GuardRecord }

// LockClient is the subset of the go-redis client used by Redis
type LockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// releaseScript deletes the lock only while it still holds our token
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// Redis takes a SET NX lock per video. The lock expires after ttl so a
// crashed run cannot hold a video forever.
type Redis struct {
	dao    repository.VideoDAO
	client LockClient
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedis(dao repository.VideoDAO, client LockClient, ttl time.Duration, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{dao: dao, client: client, ttl: ttl, logger: logger}
}

// LockKey is the redis key guarding one video
func LockKey(videoID string) string {
	return "vtt:processing:" + videoID
}

func (g *Redis) Acquire(ctx context.Context, videoID string) (func(), error) {
	key := LockKey(videoID)
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindPersistence, "failed to acquire processing lock")
	}
	if !ok {
		return nil, apperrors.ErrAlreadyRunning
	}

	release := func() {
		// The request context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := g.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			g.logger.Warn("failed to release processing lock", zap.String("key", key), zap.Error(err))
		}
	}

	if err := g.dao.MarkProcessing(ctx, videoID, false); err != nil {
		release()
		return nil, err
	}
	return release, nil
}

func (g *Redis) Mode() string { return config.GuardRedis }

// NewRedisClient connects to addr and verifies the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
