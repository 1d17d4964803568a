package testutil

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"
	"video-transcriber/internal/app/model"
)

// MockTranscriber is a testify mock of api.Transcriber
type MockTranscriber struct {
	mock.Mock
}

// NewMockTranscriber creates a MockTranscriber bound to t
func NewMockTranscriber(t mock.TestingT) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	return m
}

// Transcribe implements api.Transcriber
func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (*model.TranscriptionResult, error) {
	args := m.Called(ctx, audioPath)
	var result *model.TranscriptionResult
	if r := args.Get(0); r != nil {
		result = r.(*model.TranscriptionResult)
	}
	return result, args.Error(1)
}

// MockFetcher is a testify mock of downloader.Fetcher. Like a real download
// that dies halfway, it leaves a file at dst even when it returns an error.
type MockFetcher struct {
	mock.Mock
}

func NewMockFetcher(t mock.TestingT) *MockFetcher {
	m := &MockFetcher{}
	m.Test(t)
	return m
}

// Fetch implements downloader.Fetcher
func (m *MockFetcher) Fetch(ctx context.Context, url, dst string) error {
	args := m.Called(ctx, url, dst)
	_ = os.WriteFile(dst, []byte("fake video"), 0o644)
	return args.Error(0)
}

// MockExtractor is a testify mock of audio.Extractor that also leaves a file
// at audioPath.
type MockExtractor struct {
	mock.Mock
}

func NewMockExtractor(t mock.TestingT) *MockExtractor {
	m := &MockExtractor{}
	m.Test(t)
	return m
}

// Extract implements audio.Extractor
func (m *MockExtractor) Extract(ctx context.Context, videoPath, audioPath string) error {
	args := m.Called(ctx, videoPath, audioPath)
	_ = os.WriteFile(audioPath, []byte("fake audio"), 0o644)
	return args.Error(0)
}
