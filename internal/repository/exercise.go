package repository

import (
	"context"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
)

// ExerciseRepository defines data access for the exercise catalog.
// The visibleTo argument is the caller's creator key: queries match rows
// created by the system plus rows created by that key.
type ExerciseRepository interface {
	// Create inserts a new exercise and returns the stored record.
	Create(ctx context.Context, e *model.Exercise) (*model.Exercise, error)

	// FindByID returns an active exercise visible to the caller.
	FindByID(ctx context.Context, id uuid.UUID, visibleTo string) (*model.Exercise, error)

	// List returns a filtered page of active exercises visible to the caller,
	// plus the total row count for the filter.
	List(ctx context.Context, f model.ExerciseFilter, visibleTo string, pq PageQuery) (*PageResult[model.Exercise], error)

	// Update persists the mutable columns of a custom exercise. The row must
	// be active and created by e.CreatedBy.
	Update(ctx context.Context, e *model.Exercise) (*model.Exercise, error)

	// Deactivate soft-deletes a custom exercise created by owner. Returns
	// false when no active row matched.
	Deactivate(ctx context.Context, id uuid.UUID, owner string) (bool, error)
}
