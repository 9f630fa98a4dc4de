package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
)

type MockKidService struct {
	mock.Mock
}

func (m *MockKidService) List(ctx context.Context, userID int64) ([]model.Kid, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Kid), args.Error(1)
}

func (m *MockKidService) Get(ctx context.Context, id uuid.UUID, userID int64) (*model.Kid, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Kid), args.Error(1)
}

func (m *MockKidService) Create(ctx context.Context, in model.KidCreate, userID int64) (*model.Kid, error) {
	args := m.Called(ctx, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Kid), args.Error(1)
}

func (m *MockKidService) Update(ctx context.Context, id uuid.UUID, in model.KidUpdate, userID int64) (*model.Kid, error) {
	args := m.Called(ctx, id, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Kid), args.Error(1)
}

func (m *MockKidService) Delete(ctx context.Context, id uuid.UUID, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockKidService) Stats(ctx context.Context, id uuid.UUID, userID int64, period string) (*model.KidStatsResponse, error) {
	args := m.Called(ctx, id, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.KidStatsResponse), args.Error(1)
}
