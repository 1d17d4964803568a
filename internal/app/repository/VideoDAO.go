package repository

import (
	"context"

	"video-transcriber/internal/app/model"
)

// VideoDAO is the record store for uploaded videos
type VideoDAO interface {
	Close() error

	// EnsureSchema creates the videos table when it does not exist
	EnsureSchema(ctx context.Context) error

	// Find returns apperrors.ErrVideoNotFound when no record matches
	Find(ctx context.Context, id string) (*model.Video, error)

	Insert(ctx context.Context, video *model.Video) error

	// Update writes only the non-nil fields of the update
	Update(ctx context.Context, id string, fields model.VideoUpdate) error

	// MarkProcessing sets the status to PROCESSING. When guarded is true the
	// write is skipped for a record that is already PROCESSING and
	// apperrors.ErrAlreadyRunning is returned.
	MarkProcessing(ctx context.Context, id string, guarded bool) error

	ListCompleted(ctx context.Context) ([]model.Video, error)
}
