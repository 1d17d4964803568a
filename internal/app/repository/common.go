package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	apperrors "video-transcriber/internal/app/errors"
	"video-transcriber/internal/app/model"
)

// CommonDB implements VideoDAO over database/sql for both supported dialects
type CommonDB struct {
	db           *sql.DB
	driverName   string
	placeholders PlaceholderFunc
	now          func() time.Time
}

// PlaceholderFunc generates parameter placeholders for different SQL dialects
type PlaceholderFunc func(n int) string

// NewCommonDB creates a new CommonDB instance
func NewCommonDB(db *sql.DB, driverName string) *CommonDB {
	var placeholders PlaceholderFunc

	switch driverName {
	case "postgres":
		placeholders = func(n int) string { return fmt.Sprintf("$%d", n) }
	default:
		placeholders = func(n int) string { return "?" }
	}

	return &CommonDB{
		db:           db,
		driverName:   driverName,
		placeholders: placeholders,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// DB exposes the underlying handle
func (c *CommonDB) DB() *sql.DB {
	return c.db
}

// Close closes the underlying handle
func (c *CommonDB) Close() error {
	return c.db.Close()
}

const videoColumns = `id, file_key, transcription, transcription_status, duration, created_at, updated_at`

// Find loads one video by id
func (c *CommonDB) Find(ctx context.Context, id string) (*model.Video, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM videos WHERE id = %s`,
		videoColumns, c.placeholders(1),
	)

	v, err := scanVideo(c.db.QueryRowContext(ctx, query, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrVideoNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindPersistence, "failed to load video")
	}
	return v, nil
}

// Insert stores a new video. An empty status is stored as NONE.
func (c *CommonDB) Insert(ctx context.Context, video *model.Video) error {
	if video.ID == "" {
		return apperrors.RequiredField("id")
	}
	if video.TranscriptionStatus == "" {
		video.TranscriptionStatus = model.StatusNone
	}
	if !video.TranscriptionStatus.Valid() {
		return apperrors.InvalidField("transcription_status", string(video.TranscriptionStatus))
	}
	now := c.now()
	if video.CreatedAt.IsZero() {
		video.CreatedAt = now
	}
	video.UpdatedAt = now

	query := fmt.Sprintf(
		`INSERT INTO videos (%s) VALUES (%s, %s, %s, %s, %s, %s, %s)`,
		videoColumns,
		c.placeholders(1), c.placeholders(2), c.placeholders(3), c.placeholders(4),
		c.placeholders(5), c.placeholders(6), c.placeholders(7),
	)
	_, err := c.db.ExecContext(ctx, query,
		video.ID,
		video.FileKey,
		nullString(video.Transcription),
		string(video.TranscriptionStatus),
		nullInt(video.Duration),
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindPersistence, "failed to insert video")
	}
	return nil
}

// Update writes the non-nil fields of the update in a single statement
func (c *CommonDB) Update(ctx context.Context, id string, fields model.VideoUpdate) error {
	if fields.Empty() {
		return nil
	}

	var (
		sets []string
		args []interface{}
	)
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = %s", column, c.placeholders(len(args))))
	}
	if fields.Transcription != nil {
		add("transcription", *fields.Transcription)
	}
	if fields.TranscriptionStatus != nil {
		add("transcription_status", string(*fields.TranscriptionStatus))
	}
	if fields.Duration != nil {
		add("duration", *fields.Duration)
	}
	add("updated_at", c.now())
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE videos SET %s WHERE id = %s`,
		strings.Join(sets, ", "), c.placeholders(len(args)),
	)
	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindPersistence, "failed to update video")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrVideoNotFound
	}
	return nil
}

// MarkProcessing moves the video to PROCESSING
func (c *CommonDB) MarkProcessing(ctx context.Context, id string, guarded bool) error {
	if !guarded {
		return c.Update(ctx, id, model.StatusUpdate(model.StatusProcessing))
	}

	query := fmt.Sprintf(
		`UPDATE videos SET transcription_status = %s, updated_at = %s WHERE id = %s AND transcription_status <> %s`,
		c.placeholders(1), c.placeholders(2), c.placeholders(3), c.placeholders(4),
	)
	res, err := c.db.ExecContext(ctx, query,
		string(model.StatusProcessing), c.now(), id, string(model.StatusProcessing))
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindPersistence, "failed to mark video as processing")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindPersistence, "failed to mark video as processing")
	}
	if n > 0 {
		return nil
	}

	// Nothing changed: either the record is missing or another run holds it
	if _, err := c.Find(ctx, id); err != nil {
		return err
	}
	return apperrors.ErrAlreadyRunning
}

// ListCompleted returns completed videos, most recently updated first
func (c *CommonDB) ListCompleted(ctx context.Context) ([]model.Video, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM videos WHERE transcription_status = %s ORDER BY updated_at DESC`,
		videoColumns, c.placeholders(1),
	)

	rows, err := c.db.QueryContext(ctx, query, string(model.StatusCompleted))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindPersistence, "query failed")
	}
	defer rows.Close()

	videos := make([]model.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.KindPersistence, "db scan failed")
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindPersistence, "query failed")
	}
	return videos, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVideo(row rowScanner) (*model.Video, error) {
	var (
		v             model.Video
		transcription sql.NullString
		status        string
		duration      sql.NullInt64
	)
	if err := row.Scan(&v.ID, &v.FileKey, &transcription, &status, &duration, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.TranscriptionStatus = model.TranscriptionStatus(status)
	if transcription.Valid {
		text := transcription.String
		v.Transcription = &text
	}
	if duration.Valid {
		d := int(duration.Int64)
		v.Duration = &d
	}
	return &v, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
