package model

import (
	"time"

	"github.com/google/uuid"
)

// TrainingSessionStatus tracks a live session through its lifecycle.
type TrainingSessionStatus string

const (
	TrainingInProgress TrainingSessionStatus = "in-progress"
	TrainingCompleted  TrainingSessionStatus = "completed"
	TrainingAbandoned  TrainingSessionStatus = "abandoned"
)

// Valid reports whether the value is a known session status.
func (s TrainingSessionStatus) Valid() bool {
	switch s {
	case TrainingInProgress, TrainingCompleted, TrainingAbandoned:
		return true
	}
	return false
}

// TrainingSession is one live run of a routine by a kid. At most one
// session per kid may be in progress at a time.
type TrainingSession struct {
	ID                   uuid.UUID             `json:"id"`
	KidID                uuid.UUID             `json:"kid_id"`
	AssignmentID         *uuid.UUID            `json:"assignment_id"`
	RoutineID            uuid.UUID             `json:"routine_id"`
	Status               TrainingSessionStatus `json:"status"`
	StartedAt            time.Time             `json:"started_at"`
	CompletedAt          *time.Time            `json:"completed_at"`
	CurrentExerciseIndex int                   `json:"current_exercise_index"`
	ExercisesCompleted   int                   `json:"exercises_completed"`
	TotalExercises       int                   `json:"total_exercises"`
	TotalTimeMinutes     *int                  `json:"total_time_minutes"`
	OverallRating        *int                  `json:"overall_rating"`
	Notes                *string               `json:"notes"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            *time.Time            `json:"updated_at,omitempty"`
}

// TrainingSessionCreate carries the fields accepted when starting a
// session.
type TrainingSessionCreate struct {
	KidID        uuid.UUID  `json:"kid_id" validate:"required"`
	AssignmentID *uuid.UUID `json:"assignment_id"`
	RoutineID    uuid.UUID  `json:"routine_id" validate:"required"`
}

// ExerciseCompletion reports one finished exercise inside a session.
type ExerciseCompletion struct {
	CompletionTimeSeconds int     `json:"completion_time_seconds" validate:"required,gte=1,lte=3600"`
	Rating                int     `json:"rating" validate:"required,gte=1,lte=5"`
	Notes                 *string `json:"notes" validate:"omitempty,max=200"`
}

// SessionCompletion reports the final summary of a finished session.
type SessionCompletion struct {
	TotalTimeMinutes   int     `json:"total_time_minutes" validate:"required,gte=1,lte=600"`
	ExercisesCompleted int     `json:"exercises_completed" validate:"gte=0"`
	OverallRating      int     `json:"overall_rating" validate:"required,gte=1,lte=5"`
	Notes              *string `json:"notes" validate:"omitempty,max=500"`
}

// StatsDelta summarizes the stat changes applied when a session completes.
type StatsDelta struct {
	NewStreak    int  `json:"new_streak"`
	TotalMinutes int  `json:"total_minutes"`
	LevelUp      bool `json:"level_up"`
}

// SessionResult pairs the final session state with its stats delta.
type SessionResult struct {
	Session      *TrainingSession `json:"session"`
	StatsUpdated StatsDelta       `json:"stats_updated"`
}
