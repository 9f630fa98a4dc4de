package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
)

type MockRoutineService struct {
	mock.Mock
}

func (m *MockRoutineService) List(ctx context.Context, f model.RoutineFilter, userID int64, limit, offset int) (*service.RoutineListResult, error) {
	args := m.Called(ctx, f, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RoutineListResult), args.Error(1)
}

func (m *MockRoutineService) Get(ctx context.Context, id uuid.UUID, userID int64) (*model.Routine, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Routine), args.Error(1)
}

func (m *MockRoutineService) Create(ctx context.Context, in model.RoutineCreate, userID int64) (*model.Routine, error) {
	args := m.Called(ctx, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Routine), args.Error(1)
}

func (m *MockRoutineService) Update(ctx context.Context, id uuid.UUID, in model.RoutineUpdate, userID int64) (*model.Routine, error) {
	args := m.Called(ctx, id, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Routine), args.Error(1)
}

func (m *MockRoutineService) Delete(ctx context.Context, id uuid.UUID, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
