package model

import (
	"math"
	"time"
)

// TranscriptionStatus tracks the progress of a video's transcription
type TranscriptionStatus string

const (
	StatusNone       TranscriptionStatus = "NONE"
	StatusProcessing TranscriptionStatus = "PROCESSING"
	StatusCompleted  TranscriptionStatus = "COMPLETED"
	StatusFailed     TranscriptionStatus = "FAILED"
)

// Valid reports whether s is one of the known statuses.
func (s TranscriptionStatus) Valid() bool {
	switch s {
	case StatusNone, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Video is a previously uploaded video as stored in the record store
type Video struct {
	ID                  string              `json:"id" db:"id"`
	FileKey             string              `json:"file_key" db:"file_key"`
	Transcription       *string             `json:"transcription,omitempty" db:"transcription"`
	TranscriptionStatus TranscriptionStatus `json:"transcription_status" db:"transcription_status"`
	Duration            *int                `json:"duration,omitempty" db:"duration"`
	CreatedAt           time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for Video
func (Video) TableName() string {
	return "videos"
}

// HasCachedTranscription reports whether the stored transcription can be
// served without running the pipeline again.
func (v *Video) HasCachedTranscription() bool {
	return v.TranscriptionStatus == StatusCompleted && v.Transcription != nil
}

// VideoUpdate is a field-level update; nil fields are left untouched.
type VideoUpdate struct {
	Transcription       *string
	TranscriptionStatus *TranscriptionStatus
	Duration            *int
}

// StatusUpdate builds an update that only changes the status.
func StatusUpdate(status TranscriptionStatus) VideoUpdate {
	return VideoUpdate{TranscriptionStatus: &status}
}

// CompletedUpdate builds the update persisted after a successful run. The
// duration is only included when the service reported one.
func CompletedUpdate(result *TranscriptionResult) VideoUpdate {
	status := StatusCompleted
	text := result.Text
	update := VideoUpdate{
		Transcription:       &text,
		TranscriptionStatus: &status,
	}
	if d, ok := result.RoundedDuration(); ok {
		update.Duration = &d
	}
	return update
}

// Empty reports whether the update would change nothing.
func (u VideoUpdate) Empty() bool {
	return u.Transcription == nil && u.TranscriptionStatus == nil && u.Duration == nil
}

// TranscriptionResult is the output of one pipeline run
type TranscriptionResult struct {
	Text            string
	DurationSeconds *float64
}

// RoundedDuration returns the duration rounded to whole seconds.
func (r *TranscriptionResult) RoundedDuration() (int, bool) {
	if r == nil || r.DurationSeconds == nil {
		return 0, false
	}
	return int(math.Round(*r.DurationSeconds)), true
}
