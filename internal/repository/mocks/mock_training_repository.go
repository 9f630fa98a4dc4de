package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
)

type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) Create(ctx context.Context, s *model.TrainingSession) (*model.TrainingSession, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingSession), args.Error(1)
}

func (m *MockTrainingRepository) FindByID(ctx context.Context, id uuid.UUID, userID int64) (*model.TrainingSession, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingSession), args.Error(1)
}

func (m *MockTrainingRepository) Update(ctx context.Context, s *model.TrainingSession) (*model.TrainingSession, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingSession), args.Error(1)
}
