package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
)

type MockExerciseService struct {
	mock.Mock
}

func (m *MockExerciseService) List(ctx context.Context, f model.ExerciseFilter, userID int64, limit, offset int) (*service.ExerciseListResult, error) {
	args := m.Called(ctx, f, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExerciseListResult), args.Error(1)
}

func (m *MockExerciseService) Get(ctx context.Context, id uuid.UUID, userID int64) (*model.Exercise, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exercise), args.Error(1)
}

func (m *MockExerciseService) Create(ctx context.Context, in model.ExerciseCreate, userID int64) (*model.Exercise, error) {
	args := m.Called(ctx, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exercise), args.Error(1)
}

func (m *MockExerciseService) Update(ctx context.Context, id uuid.UUID, in model.ExerciseUpdate, userID int64) (*model.Exercise, error) {
	args := m.Called(ctx, id, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exercise), args.Error(1)
}

func (m *MockExerciseService) Delete(ctx context.Context, id uuid.UUID, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockExerciseService) Categories() []model.ExerciseCategory {
	args := m.Called()
	return args.Get(0).([]model.ExerciseCategory)
}

func (m *MockExerciseService) AgeGroups() []model.AgeGroup {
	args := m.Called()
	return args.Get(0).([]model.AgeGroup)
}
