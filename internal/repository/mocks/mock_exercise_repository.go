package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) Create(ctx context.Context, e *model.Exercise) (*model.Exercise, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) FindByID(ctx context.Context, id uuid.UUID, visibleTo string) (*model.Exercise, error) {
	args := m.Called(ctx, id, visibleTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) List(ctx context.Context, f model.ExerciseFilter, visibleTo string, pq repository.PageQuery) (*repository.PageResult[model.Exercise], error) {
	args := m.Called(ctx, f, visibleTo, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Exercise]), args.Error(1)
}

func (m *MockExerciseRepository) Update(ctx context.Context, e *model.Exercise) (*model.Exercise, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) Deactivate(ctx context.Context, id uuid.UUID, owner string) (bool, error) {
	args := m.Called(ctx, id, owner)
	return args.Bool(0), args.Error(1)
}
