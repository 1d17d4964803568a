package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "video-transcriber/internal/app/errors"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         apperrors.ErrVideoNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Video not found",
		},
		{
			name:        "wrapped not found keeps its message",
			err:         fmt.Errorf("lookup v1: %w", apperrors.ErrVideoNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Video not found",
		},
		{
			name:        "missing id",
			err:         apperrors.ErrMissingVideoID,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "videoId is required",
		},
		{
			name:        "conflict",
			err:         apperrors.ErrAlreadyRunning,
			wantStatus:  http.StatusConflict,
			wantMessage: "transcription already in progress",
		},
		{
			name:        "configuration",
			err:         apperrors.ErrMissingAPIKey,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "transcription service credential is not configured",
		},
		{
			name:        "fetch",
			err:         apperrors.FetchFailed("404 Not Found"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "failed to fetch video: 404 Not Found",
		},
		{
			name:        "untyped",
			err:         stderrors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "boom",
		},
		{
			name:        "empty message falls back",
			err:         stderrors.New(""),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: genericMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, apiErr.HTTPStatus())
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestFromError_Nil(t *testing.T) {
	assert.Nil(t, FromError(nil))
}

func TestFromError_PassesAPIErrorThrough(t *testing.T) {
	orig := NewBadRequestError("invalid JSON body")
	assert.Same(t, orig, FromError(orig))
}
