package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
)

type MockKidRepository struct {
	mock.Mock
}

func (m *MockKidRepository) Create(ctx context.Context, k *model.Kid) (*model.Kid, error) {
	args := m.Called(ctx, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Kid), args.Error(1)
}

func (m *MockKidRepository) ListByUser(ctx context.Context, userID int64) ([]model.Kid, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Kid), args.Error(1)
}

func (m *MockKidRepository) FindByID(ctx context.Context, id uuid.UUID, userID int64) (*model.Kid, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Kid), args.Error(1)
}

func (m *MockKidRepository) Update(ctx context.Context, k *model.Kid) (*model.Kid, error) {
	args := m.Called(ctx, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Kid), args.Error(1)
}

func (m *MockKidRepository) UpdateStats(ctx context.Context, id uuid.UUID, stats model.KidStats) error {
	args := m.Called(ctx, id, stats)
	return args.Error(0)
}

func (m *MockKidRepository) Deactivate(ctx context.Context, id uuid.UUID, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockKidRepository) DailyActivity(ctx context.Context, id uuid.UUID, from, to model.Date) ([]model.WeeklyProgress, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WeeklyProgress), args.Error(1)
}
