package repository

import (
	"context"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
)

// AssignmentRepository defines data access for daily routine assignments.
// Reads are scoped through the kids table to the owning user.
type AssignmentRepository interface {
	// Create inserts an assignment and returns the stored record. Returns
	// ErrDuplicate when the kid already has this routine on that date.
	Create(ctx context.Context, a *model.Assignment) (*model.Assignment, error)

	// FindByID returns an assignment whose kid belongs to the given user.
	FindByID(ctx context.Context, id uuid.UUID, userID int64) (*model.Assignment, error)

	// List returns a filtered page of assignments for the user's kids,
	// newest assigned date first.
	List(ctx context.Context, userID int64, f model.AssignmentFilter, pq PageQuery) (*PageResult[model.Assignment], error)

	// FindByKidAndDate returns the assignment of a kid on a calendar day,
	// or sql.ErrNoRows when none exists.
	FindByKidAndDate(ctx context.Context, kidID uuid.UUID, userID int64, day model.Date) (*model.Assignment, error)

	// Update persists status and completion columns.
	Update(ctx context.Context, a *model.Assignment) (*model.Assignment, error)
}
