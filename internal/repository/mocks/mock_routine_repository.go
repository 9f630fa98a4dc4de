package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

type MockRoutineRepository struct {
	mock.Mock
}

func (m *MockRoutineRepository) Create(ctx context.Context, r *model.Routine) (*model.Routine, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Routine), args.Error(1)
}

func (m *MockRoutineRepository) FindByID(ctx context.Context, id uuid.UUID, visibleTo string) (*model.Routine, error) {
	args := m.Called(ctx, id, visibleTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Routine), args.Error(1)
}

func (m *MockRoutineRepository) List(ctx context.Context, f model.RoutineFilter, visibleTo string, pq repository.PageQuery) (*repository.PageResult[model.Routine], error) {
	args := m.Called(ctx, f, visibleTo, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Routine]), args.Error(1)
}

func (m *MockRoutineRepository) Update(ctx context.Context, r *model.Routine, replaceSlots bool) (*model.Routine, error) {
	args := m.Called(ctx, r, replaceSlots)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Routine), args.Error(1)
}

func (m *MockRoutineRepository) Deactivate(ctx context.Context, id uuid.UUID, owner string) (bool, error) {
	args := m.Called(ctx, id, owner)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoutineRepository) ExistsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoutineRepository) CountSlots(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRoutineRepository) IncrementAssignments(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
