package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
)

type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) List(ctx context.Context, userID int64, f model.AssignmentFilter, limit, offset int) (*service.AssignmentListResult, error) {
	args := m.Called(ctx, userID, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AssignmentListResult), args.Error(1)
}

func (m *MockAssignmentService) Create(ctx context.Context, in model.AssignmentCreate, userID int64) (*model.Assignment, error) {
	args := m.Called(ctx, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}

func (m *MockAssignmentService) ListToday(ctx context.Context, userID int64) ([]model.Assignment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assignment), args.Error(1)
}

func (m *MockAssignmentService) KidToday(ctx context.Context, kidID uuid.UUID, userID int64) (*model.Assignment, error) {
	args := m.Called(ctx, kidID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}

func (m *MockAssignmentService) Complete(ctx context.Context, id uuid.UUID, in model.AssignmentComplete, userID int64) (*model.Assignment, error) {
	args := m.Called(ctx, id, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}
