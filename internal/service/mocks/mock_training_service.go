package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
)

type MockTrainingService struct {
	mock.Mock
}

func (m *MockTrainingService) Start(ctx context.Context, in model.TrainingSessionCreate, userID int64) (*model.TrainingSession, error) {
	args := m.Called(ctx, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingSession), args.Error(1)
}

func (m *MockTrainingService) Get(ctx context.Context, id uuid.UUID, userID int64) (*model.TrainingSession, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingSession), args.Error(1)
}

func (m *MockTrainingService) CompleteExercise(ctx context.Context, id uuid.UUID, in model.ExerciseCompletion, userID int64) (*model.TrainingSession, error) {
	args := m.Called(ctx, id, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingSession), args.Error(1)
}

func (m *MockTrainingService) Complete(ctx context.Context, id uuid.UUID, in model.SessionCompletion, userID int64) (*model.SessionResult, error) {
	args := m.Called(ctx, id, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionResult), args.Error(1)
}

func (m *MockTrainingService) Abandon(ctx context.Context, id uuid.UUID, userID int64) (*model.TrainingSession, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingSession), args.Error(1)
}
