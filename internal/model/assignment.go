package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus tracks an assignment through its lifecycle.
type AssignmentStatus string

const (
	AssignmentPending    AssignmentStatus = "pending"
	AssignmentInProgress AssignmentStatus = "in-progress"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentSkipped    AssignmentStatus = "skipped"
)

// Valid reports whether the value is a known assignment status.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentInProgress, AssignmentCompleted, AssignmentSkipped:
		return true
	}
	return false
}

// Assignment schedules a routine for a kid on a calendar day.
type Assignment struct {
	ID                    uuid.UUID        `json:"id"`
	RoutineID             uuid.UUID        `json:"routine_id"`
	KidID                 uuid.UUID        `json:"kid_id"`
	AssignedDate          Date             `json:"assigned_date"`
	Status                AssignmentStatus `json:"status"`
	AssignedBy            int64            `json:"assigned_by"`
	CompletedAt           *time.Time       `json:"completed_at"`
	CompletionTimeMinutes *int             `json:"completion_time_minutes"`
	ExercisesCompleted    *int             `json:"exercises_completed"`
	Notes                 *string          `json:"notes"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             *time.Time       `json:"updated_at,omitempty"`
	Routine               *Routine         `json:"routine,omitempty"`
}

// AssignmentCreate carries the fields accepted when scheduling a routine.
type AssignmentCreate struct {
	RoutineID    uuid.UUID `json:"routine_id" validate:"required"`
	KidID        uuid.UUID `json:"kid_id" validate:"required"`
	AssignedDate Date      `json:"assigned_date"`
}

// AssignmentComplete carries the completion details reported by a kid.
type AssignmentComplete struct {
	CompletionTimeMinutes int     `json:"completion_time_minutes" validate:"required,gte=1,lte=600"`
	ExercisesCompleted    int     `json:"exercises_completed" validate:"gte=0"`
	Notes                 *string `json:"notes" validate:"omitempty,max=500"`
}

// AssignmentFilter narrows assignment listings.
type AssignmentFilter struct {
	KidID  *uuid.UUID
	Status *AssignmentStatus
	Date   *Date
}
