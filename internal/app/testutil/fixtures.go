package testutil

import "video-transcriber/internal/app/model"

// Test credential long enough to pass key validation
const TestAPIKey = "sk-test-0123456789abcdefghij"

// PendingVideo is a video that has never been transcribed
func PendingVideo(id string) model.Video {
	return model.Video{ID: id, FileKey: "uploads/" + id + ".mp4", TranscriptionStatus: model.StatusNone}
}

// CompletedVideo is a video with a cached transcription
func CompletedVideo(id, text string, duration int) model.Video {
	v := PendingVideo(id)
	v.Transcription = StrPtr(text)
	v.TranscriptionStatus = model.StatusCompleted
	v.Duration = IntPtr(duration)
	return v
}

// Result builds a pipeline result; pass a negative duration for none
func Result(text string, duration float64) *model.TranscriptionResult {
	r := &model.TranscriptionResult{Text: text}
	if duration >= 0 {
		r.DurationSeconds = FloatPtr(duration)
	}
	return r
}

func StrPtr(s string) *string { return &s }
func IntPtr(i int) *int { return &i }
func FloatPtr(f float64) *float64 { return &f }
