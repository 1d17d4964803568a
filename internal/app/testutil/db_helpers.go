package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"video-transcriber/internal/app/model"
	"video-transcriber/internal/app/repository/sqlite"
)

// NewTestVideoDAO returns an in-memory SQLite store with the schema applied.
// It is closed when the test ends.
func NewTestVideoDAO(t *testing.T) *sqlite.SQLiteDB {
	t.Helper()
	dao, err := sqlite.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { dao.Close() })
	require.NoError(t, dao.EnsureSchema(context.Background()))
	return dao
}

// SeedVideos inserts the given videos
func SeedVideos(t *testing.T, dao *sqlite.SQLiteDB, videos ...model.Video) {
	t.Helper()
	for i := range videos {
		require.NoError(t, dao.Insert(context.Background(), &videos[i]))
	}
}

// MustFindVideo loads a video or fails the test
func MustFindVideo(t *testing.T, dao *sqlite.SQLiteDB, id string) *model.Video {
	t.Helper()
	v, err := dao.Find(context.Background(), id)
	require.NoError(t, err)
	return v
}
