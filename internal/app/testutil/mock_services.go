package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
	"video-transcriber/internal/api/v1/dto"
)

// MockTranscriptionService is a testify mock of services.TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

func NewMockTranscriptionService(t mock.TestingT) *MockTranscriptionService {
	m := &MockTranscriptionService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, videoID string) (*dto.TranscribeResponse, error) {
	args := m.Called(ctx, videoID)
	var resp *dto.TranscribeResponse
	if r := args.Get(0); r != nil {
		resp = r.(*dto.TranscribeResponse)
	}
	return resp, args.Error(1)
}

func (m *MockTranscriptionService) GetStatus(ctx context.Context, videoID string) (*dto.TranscriptionStatusResponse, error) {
	args := m.Called(ctx, videoID)
	var resp *dto.TranscriptionStatusResponse
	if r := args.Get(0); r != nil {
		resp = r.(*dto.TranscriptionStatusResponse)
	}
	return resp, args.Error(1)
}
