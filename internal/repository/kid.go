package repository

import (
	"context"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
)

// KidRepository defines data access for kid profiles. Every read and write
// is scoped to the owning user; rows deactivated by Deactivate stop
// matching.
type KidRepository interface {
	// Create inserts a new kid profile and returns the stored record.
	Create(ctx context.Context, k *model.Kid) (*model.Kid, error)

	// ListByUser returns the active kids owned by a user.
	ListByUser(ctx context.Context, userID int64) ([]model.Kid, error)

	// FindByID returns an active kid owned by the given user.
	FindByID(ctx context.Context, id uuid.UUID, userID int64) (*model.Kid, error)

	// Update persists name, age, avatar, birth date and preferences. The row
	// must be active and owned by k.UserID.
	Update(ctx context.Context, k *model.Kid) (*model.Kid, error)

	// UpdateStats replaces the stats blob of a kid.
	UpdateStats(ctx context.Context, id uuid.UUID, stats model.KidStats) error

	// Deactivate soft-deletes a kid. Returns false when no active row
	// matched.
	Deactivate(ctx context.Context, id uuid.UUID, userID int64) (bool, error)

	// DailyActivity aggregates assignment counts and completed minutes per
	// day over [from, to], ordered by day ascending. Days without rows are
	// absent from the result.
	DailyActivity(ctx context.Context, id uuid.UUID, from, to model.Date) ([]model.WeeklyProgress, error)
}
