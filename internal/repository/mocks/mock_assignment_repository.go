package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Create(ctx context.Context, a *model.Assignment) (*model.Assignment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID, userID int64) (*model.Assignment, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) List(ctx context.Context, userID int64, f model.AssignmentFilter, pq repository.PageQuery) (*repository.PageResult[model.Assignment], error) {
	args := m.Called(ctx, userID, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Assignment]), args.Error(1)
}

func (m *MockAssignmentRepository) FindByKidAndDate(ctx context.Context, kidID uuid.UUID, userID int64, day model.Date) (*model.Assignment, error) {
	args := m.Called(ctx, kidID, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *model.Assignment) (*model.Assignment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}
