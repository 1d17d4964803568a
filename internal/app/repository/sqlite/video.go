package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	apperrors "video-transcriber/internal/app/errors"
	"video-transcriber/internal/app/repository"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS videos (
	id                   TEXT PRIMARY KEY,
	file_key             TEXT NOT NULL,
	transcription        TEXT,
	transcription_status TEXT NOT NULL DEFAULT 'NONE',
	duration             INTEGER,
	created_at           DATETIME NOT NULL,
	updated_at           DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_videos_status ON videos (transcription_status);`

// SQLiteDB is the SQLite-backed VideoDAO
type SQLiteDB struct {
	*repository.CommonDB
}

// NewSQLiteDB opens the database at dsn, creating the parent directory of a
// file database when needed.
func NewSQLiteDB(dsn string) (*SQLiteDB, error) {
	if dir := dataDir(dsn); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps :memory: databases alive and serializes writers
	db.SetMaxOpenConns(1)

	return &SQLiteDB{CommonDB: repository.NewCommonDB(db, "sqlite3")}, nil
}

// EnsureSchema creates the videos table
func (sdb *SQLiteDB) EnsureSchema(ctx context.Context) error {
	if _, err := sdb.DB().ExecContext(ctx, createTableSQL); err != nil {
		return apperrors.Wrap(err, apperrors.KindPersistence, "failed to create table")
	}
	return nil
}

func dataDir(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return ""
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return ""
	}
	return dir
}
