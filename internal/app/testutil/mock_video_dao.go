package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
	"video-transcriber/internal/app/model"
)

// MockVideoDAO is a testify mock of repository.VideoDAO
type MockVideoDAO struct {
	mock.Mock
}

func NewMockVideoDAO(t mock.TestingT) *MockVideoDAO {
	m := &MockVideoDAO{}
	m.Test(t)
	return m
}

func (m *MockVideoDAO) Close() error {
	return m.Called().Error(0)
}

func (m *MockVideoDAO) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockVideoDAO) Find(ctx context.Context, id string) (*model.Video, error) {
	args := m.Called(ctx, id)
	var v *model.Video
	if r := args.Get(0); r != nil {
		v = r.(*model.Video)
	}
	return v, args.Error(1)
}

func (m *MockVideoDAO) Insert(ctx context.Context, video *model.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoDAO) Update(ctx context.Context, id string, fields model.VideoUpdate) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockVideoDAO) MarkProcessing(ctx context.Context, id string, guarded bool) error {
	return m.Called(ctx, id, guarded).Error(0)
}

func (m *MockVideoDAO) ListCompleted(ctx context.Context) ([]model.Video, error) {
	args := m.Called(ctx)
	var videos []model.Video
	if r := args.Get(0); r != nil {
		videos = r.([]model.Video)
	}
	return videos, args.Error(1)
}
