package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
	"jumpingkids/internal/storage"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Attach(ctx context.Context, exerciseID uuid.UUID, userID int64, kind service.MediaKind, r io.Reader, filename, contentType string, size int64) (*model.Exercise, error) {
	args := m.Called(ctx, exerciseID, userID, kind, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exercise), args.Error(1)
}

func (m *MockMediaService) ImportFromURL(ctx context.Context, exerciseID uuid.UUID, userID int64, kind service.MediaKind, srcURL string) (*model.Exercise, error) {
	args := m.Called(ctx, exerciseID, userID, kind, srcURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exercise), args.Error(1)
}

func (m *MockMediaService) PresignedURL(ctx context.Context, exerciseID uuid.UUID, userID int64, kind service.MediaKind) (string, error) {
	args := m.Called(ctx, exerciseID, userID, kind)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) Open(ctx context.Context, exerciseID uuid.UUID, userID int64, kind service.MediaKind) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, exerciseID, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
