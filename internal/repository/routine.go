package repository

import (
	"context"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
)

// RoutineRepository defines data access for routines and their ordered
// exercise slots. Slot writes happen in the same transaction as the
// routine row.
type RoutineRepository interface {
	// Create inserts a routine with its slots and returns the stored record,
	// slots included.
	Create(ctx context.Context, r *model.Routine) (*model.Routine, error)

	// FindByID returns an active routine visible to the caller with its
	// slots and their exercises hydrated.
	FindByID(ctx context.Context, id uuid.UUID, visibleTo string) (*model.Routine, error)

	// List returns a filtered page of active routines visible to the caller.
	// Slots are hydrated for every returned routine.
	List(ctx context.Context, f model.RoutineFilter, visibleTo string, pq PageQuery) (*PageResult[model.Routine], error)

	// Update persists the mutable columns of a custom routine; when
	// replaceSlots is true the slot list is replaced with r.Exercises.
	Update(ctx context.Context, r *model.Routine, replaceSlots bool) (*model.Routine, error)

	// Deactivate soft-deletes a custom routine created by owner. Returns
	// false when no active row matched.
	Deactivate(ctx context.Context, id uuid.UUID, owner string) (bool, error)

	// ExistsActive reports whether an active routine with this ID exists,
	// regardless of creator.
	ExistsActive(ctx context.Context, id uuid.UUID) (bool, error)

	// CountSlots returns the number of exercise slots in a routine.
	CountSlots(ctx context.Context, id uuid.UUID) (int, error)

	// IncrementAssignments bumps the routine's total assignment counter.
	IncrementAssignments(ctx context.Context, id uuid.UUID) error
}
