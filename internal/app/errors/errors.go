package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error so callers can branch on the failure category
// without inspecting messages.
type Kind string

const (
	KindUnknown       Kind = "unknown"
	KindConfiguration Kind = "configuration"
	KindInvalid       Kind = "invalid"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindFetch         Kind = "fetch"
	KindExtraction    Kind = "extraction"
	KindTranscription Kind = "transcription"
	KindPersistence   Kind = "persistence"
)

// Common error values
var (
	// Configuration errors
	ErrMissingAPIKey = New(KindConfiguration, "transcription service credential is not configured")
	ErrInvalidConfig = New(KindConfiguration, "invalid configuration")

	// Record errors
	ErrVideoNotFound    = New(KindNotFound, "Video not found")
	ErrAlreadyRunning   = New(KindConflict, "transcription already in progress")
	ErrMissingVideoID   = New(KindInvalid, "videoId is required")
	ErrUpdateFailed     = New(KindPersistence, "update failed")
	ErrQueryFailed      = New(KindPersistence, "query failed")
	ErrExtractionFailed = New(KindExtraction, "audio extraction failed")
)

// Error represents a standardized, kind-tagged error
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates a new error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a new formatted error
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a kind and additional context
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message returns the message without the cause chain.
func (e *Error) Message() string {
	return e.message
}

// Kind returns the error category
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same kind and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.message == t.message
}

// KindOf returns the kind of the outermost *Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Helper functions for the pipeline stages

// FetchFailed returns a fetch error carrying the remote status text
func FetchFailed(status string) error {
	return Newf(KindFetch, "failed to fetch video: %s", status)
}

// NotFound returns an error for items that were not found
func NotFound(itemType string, identifier string) error {
	return Newf(KindNotFound, "%s not found: %s", itemType, identifier)
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf(KindInvalid, "%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Newf(KindInvalid, "%s is invalid: %s", field, reason)
}
