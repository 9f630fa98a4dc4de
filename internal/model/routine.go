package model

import (
	"time"

	"github.com/google/uuid"
)

// RoutineExercise is one ordered slot in a routine. DurationSeconds
// overrides the exercise's own duration when set; Repetitions switches the
// slot to rep counting instead.
type RoutineExercise struct {
	ID              uuid.UUID `json:"-"`
	RoutineID       uuid.UUID `json:"-"`
	ExerciseID      uuid.UUID `json:"exercise_id"`
	Order           int       `json:"order"`
	DurationSeconds *int      `json:"duration_seconds"`
	Repetitions     *int      `json:"repetitions"`
	RestSeconds     int       `json:"rest_seconds"`
	Exercise        *Exercise `json:"exercise,omitempty"`
}

// Routine is an ordered set of exercises a tutor assigns to kids.
// TotalAssignments counts how often the routine has been scheduled and
// feeds the popularity score.
type Routine struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Category         ExerciseCategory  `json:"category"`
	Difficulty       DifficultyLevel   `json:"difficulty"`
	DurationMinutes  int               `json:"duration_minutes"`
	AgeGroup         AgeGroup          `json:"age_group"`
	Exercises        []RoutineExercise `json:"exercises"`
	CreatedBy        string            `json:"created_by"`
	IsCustom         bool              `json:"is_custom"`
	IsActive         bool              `json:"is_active"`
	PopularityScore  float64           `json:"popularity_score"`
	TotalAssignments int               `json:"total_assignments"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        *time.Time        `json:"updated_at,omitempty"`
}

// RoutineExerciseInput is one slot as provided on create or update.
type RoutineExerciseInput struct {
	ExerciseID      uuid.UUID `json:"exercise_id" validate:"required"`
	Order           int       `json:"order" validate:"required,gte=1"`
	DurationSeconds *int      `json:"duration_seconds" validate:"omitempty,gte=10,lte=600"`
	Repetitions     *int      `json:"repetitions" validate:"omitempty,gte=1,lte=100"`
	RestSeconds     *int      `json:"rest_seconds" validate:"omitempty,gte=0,lte=300"`
}

// RoutineCreate carries the fields accepted when creating a routine.
type RoutineCreate struct {
	Name            string                 `json:"name" validate:"required,min=1,max=200"`
	Description     string                 `json:"description" validate:"max=1000"`
	Category        ExerciseCategory       `json:"category" validate:"required,oneof=Cardio Fuerza Flexibilidad Equilibrio Coordinación"`
	Difficulty      DifficultyLevel        `json:"difficulty" validate:"required,oneof=Principiante Intermedio Avanzado"`
	DurationMinutes int                    `json:"duration_minutes" validate:"required,gte=5,lte=120"`
	AgeGroup        AgeGroup               `json:"age_group" validate:"required,oneof=3-5 6-8 9-12"`
	Exercises       []RoutineExerciseInput `json:"exercises" validate:"dive"`
}

// RoutineUpdate carries the optional fields of a partial update. A non-nil
// Exercises slice replaces the whole slot list.
type RoutineUpdate struct {
	Name            *string                `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string                `json:"description" validate:"omitempty,max=1000"`
	Category        *ExerciseCategory      `json:"category" validate:"omitempty,oneof=Cardio Fuerza Flexibilidad Equilibrio Coordinación"`
	Difficulty      *DifficultyLevel       `json:"difficulty" validate:"omitempty,oneof=Principiante Intermedio Avanzado"`
	DurationMinutes *int                   `json:"duration_minutes" validate:"omitempty,gte=5,lte=120"`
	AgeGroup        *AgeGroup              `json:"age_group" validate:"omitempty,oneof=3-5 6-8 9-12"`
	Exercises       []RoutineExerciseInput `json:"exercises" validate:"omitempty,dive"`
}

// RoutineFilter narrows routine listings.
type RoutineFilter struct {
	Category    *ExerciseCategory
	Difficulty  *DifficultyLevel
	DurationMax *int
	Search      string
}
