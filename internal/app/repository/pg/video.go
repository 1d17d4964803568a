package pg

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	apperrors "video-transcriber/internal/app/errors"
	"video-transcriber/internal/app/repository"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS videos (
	id                   TEXT PRIMARY KEY,
	file_key             TEXT NOT NULL,
	transcription        TEXT,
	transcription_status VARCHAR(16) NOT NULL DEFAULT 'NONE',
	duration             INTEGER,
	created_at           TIMESTAMPTZ NOT NULL,
	updated_at           TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_videos_status ON videos (transcription_status);`

// PostgresDB is the PostgreSQL-backed VideoDAO
type PostgresDB struct {
	*repository.CommonDB
}

// NewPostgresDB opens a connection pool. The DSN is not validated until the
// first query.
func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an existing handle
func NewWithDB(db *sql.DB) *PostgresDB {
	return &PostgresDB{CommonDB: repository.NewCommonDB(db, "postgres")}
}

// EnsureSchema creates the videos table
func (pdb *PostgresDB) EnsureSchema(ctx context.Context) error {
	if _, err := pdb.DB().ExecContext(ctx, createTableSQL); err != nil {
		return apperrors.Wrap(err, apperrors.KindPersistence, "failed to create table")
	}
	return nil
}
