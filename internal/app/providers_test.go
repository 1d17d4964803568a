package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"video-transcriber/internal/app/repository/guard"
	"video-transcriber/internal/app/storage"
	"video-transcriber/internal/app/testutil"
	"video-transcriber/internal/config"
)

func useMemoryDatabase(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite3")
	t.Setenv("DATABASE_DSN", ":memory:")
}

func TestProvideVideoDAO(t *testing.T) {
	useMemoryDatabase(t)

	dao, cleanup, err := provideVideoDAO(context.Background(), zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	video := testutil.PendingVideo("v1")
	require.NoError(t, dao.Insert(context.Background(), &video))
	found, err := dao.Find(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "uploads/v1.mp4", found.FileKey)
}

func TestProvideVideoDAO_UnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, _, err := provideVideoDAO(context.Background(), zap.NewNop())
	assert.ErrorContains(t, err, "unsupported DATABASE_DRIVER")
}

func TestProvideProcessingGuard(t *testing.T) {
	dao := testutil.NewTestVideoDAO(t)

	tests := []struct {
		mode string
		want interface{}
	}{
		{config.GuardNone, &guard.None{}},
		{config.GuardRecord, &guard.Record{}},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := config.DefaultPipelineConfig()
			cfg.ProcessingGuard = tt.mode

			g, cleanup, err := provideProcessingGuard(context.Background(), cfg, dao, zap.NewNop())
			require.NoError(t, err)
			defer cleanup()
			assert.IsType(t, tt.want, g)
			assert.Equal(t, tt.mode, g.Mode())
		})
	}
}

func TestProvideProcessingGuard_RedisUnreachable(t *testing.T) {
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	cfg := config.DefaultPipelineConfig()
	cfg.ProcessingGuard = config.GuardRedis

	_, _, err := provideProcessingGuard(context.Background(), cfg, testutil.NewTestVideoDAO(t), zap.NewNop())
	assert.Error(t, err)
}

func TestProvideURLResolver(t *testing.T) {
	t.Setenv("STORAGE_ACCESS_KEY", "")
	t.Setenv("STORAGE_SECRET_KEY", "")

	resolver, err := provideURLResolver()
	require.NoError(t, err)
	assert.IsType(t, &storage.PublicResolver{}, resolver)
}

func TestInitializeApp(t *testing.T) {
	useMemoryDatabase(t)
	t.Setenv("OPENAI_API_KEY", testutil.TestAPIKey)
	t.Setenv("STORAGE_ACCESS_KEY", "")
	t.Setenv("STORAGE_SECRET_KEY", "")
	t.Setenv("TMPDIR", t.TempDir())

	app, cleanup, err := InitializeApp(context.Background(), "", zap.NewNop(), nil)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, config.GuardNone, app.Config.ProcessingGuard)
	require.NotNil(t, app.Server)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/videos/ghost/transcription", nil)
	app.Server.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInitializeApp_BadConfigPath(t *testing.T) {
	useMemoryDatabase(t)

	_, _, err := InitializeApp(context.Background(), ConfigPath("/nonexistent/pipeline.yaml"), zap.NewNop(), nil)
	assert.ErrorContains(t, err, "config file not found")
}

func TestInitializeVideoDAO(t *testing.T) {
	useMemoryDatabase(t)

	dao, cleanup, err := InitializeVideoDAO(context.Background(), zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	videos, err := dao.ListCompleted(context.Background())
	require.NoError(t, err)
	assert.Empty(t, videos)
}
