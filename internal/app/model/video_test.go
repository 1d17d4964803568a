package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletedUpdate(t *testing.T) {
	t.Run("with duration", func(t *testing.T) {
		d := 12.4
		u := CompletedUpdate(&TranscriptionResult{Text: "hello world", DurationSeconds: &d})

		require.NotNil(t, u.Transcription)
		require.NotNil(t, u.TranscriptionStatus)
		require.NotNil(t, u.Duration)
		assert.Equal(t, "hello world", *u.Transcription)
		assert.Equal(t, StatusCompleted, *u.TranscriptionStatus)
		assert.Equal(t, 12, *u.Duration)
	})

	t.Run("rounds half up", func(t *testing.T) {
		d := 12.5
		u := CompletedUpdate(&TranscriptionResult{Text: "x", DurationSeconds: &d})
		require.NotNil(t, u.Duration)
		assert.Equal(t, 13, *u.Duration)
	})

	t.Run("without duration keeps prior value", func(t *testing.T) {
		u := CompletedUpdate(&TranscriptionResult{Text: "x"})
		assert.Nil(t, u.Duration)
	})
}

func TestVideo_HasCachedTranscription(t *testing.T) {
	text := "x"
	assert.True(t, (&Video{TranscriptionStatus: StatusCompleted, Transcription: &text}).HasCachedTranscription())
	assert.False(t, (&Video{TranscriptionStatus: StatusCompleted}).HasCachedTranscription())
	assert.False(t, (&Video{TranscriptionStatus: StatusFailed, Transcription: &text}).HasCachedTranscription())
}

func TestTranscriptionStatus_Valid(t *testing.T) {
	for _, s := range []TranscriptionStatus{StatusNone, StatusProcessing, StatusCompleted, StatusFailed} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, TranscriptionStatus("DONE").Valid())
}
