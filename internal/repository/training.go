package repository

import (
	"context"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
)

// TrainingRepository defines data access for live training sessions.
// Reads are scoped through the kids table to the owning user.
type TrainingRepository interface {
	// Create inserts a session and returns the stored record. Returns
	// ErrDuplicate when the kid already has a session in progress.
	Create(ctx context.Context, s *model.TrainingSession) (*model.TrainingSession, error)

	// FindByID returns a session whose kid belongs to the given user.
	FindByID(ctx context.Context, id uuid.UUID, userID int64) (*model.TrainingSession, error)

	// Update persists progress and completion columns.
	Update(ctx context.Context, s *model.TrainingSession) (*model.TrainingSession, error)
}
