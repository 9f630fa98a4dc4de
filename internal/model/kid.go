package model

import (
	"time"

	"github.com/google/uuid"
)

// DifficultyLevel grades exercises, routines and kid preferences. The
// Spanish labels are part of the API contract.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "Principiante"
	DifficultyIntermediate DifficultyLevel = "Intermedio"
	DifficultyAdvanced     DifficultyLevel = "Avanzado"
)

// Valid reports whether the value is a known difficulty level.
func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// PreferredTime is a kid's favorite slot of the day for exercising.
type PreferredTime string

const (
	PreferredMorning   PreferredTime = "morning"
	PreferredAfternoon PreferredTime = "afternoon"
	PreferredEvening   PreferredTime = "evening"
)

// KidPreferences is the preferences blob stored as JSONB with each kid.
type KidPreferences struct {
	FavoriteExercises []string        `json:"favorite_exercises"`
	PreferredTime     PreferredTime   `json:"preferred_time" validate:"omitempty,oneof=morning afternoon evening"`
	MaxDailyExercises int             `json:"max_daily_exercises" validate:"omitempty,gte=1,lte=20"`
	Difficulty        DifficultyLevel `json:"difficulty" validate:"omitempty,oneof=Principiante Intermedio Avanzado"`
}

// DefaultKidPreferences returns the preferences applied when a kid is
// created without any.
func DefaultKidPreferences() KidPreferences {
	return KidPreferences{
		FavoriteExercises: []string{},
		PreferredTime:     PreferredMorning,
		MaxDailyExercises: 5,
		Difficulty:        DifficultyBeginner,
	}
}

// KidStats is the progress blob stored as JSONB with each kid. It is
// recomputed as training sessions complete.
type KidStats struct {
	TotalRoutines     int        `json:"total_routines"`
	ThisWeekCompleted int        `json:"this_week_completed"`
	ThisWeekAssigned  int        `json:"this_week_assigned"`
	CurrentStreak     int        `json:"current_streak"`
	LongestStreak     int        `json:"longest_streak"`
	FavoriteCategory  *string    `json:"favorite_category"`
	TotalMinutes      int        `json:"total_minutes"`
	LastActivity      *time.Time `json:"last_activity"`
}

// Kid is a child profile owned by a tutor account. Deactivated kids are
// kept for history and excluded from listings.
type Kid struct {
	ID          uuid.UUID      `json:"id"`
	UserID      int64          `json:"user_id"`
	Name        string         `json:"name"`
	Age         int            `json:"age"`
	Avatar      string         `json:"avatar"`
	BirthDate   Date           `json:"birth_date"`
	Preferences KidPreferences `json:"preferences"`
	Stats       KidStats       `json:"stats"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}

// KidCreate carries the fields accepted when registering a kid.
type KidCreate struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Age         int             `json:"age" validate:"required,gte=3,lte=18"`
	Avatar      string          `json:"avatar" validate:"omitempty,max=10"`
	BirthDate   Date            `json:"birth_date" validate:"required"`
	Preferences *KidPreferences `json:"preferences"`
}

// KidUpdate carries the optional fields of a partial update. Nil fields
// are left untouched.
type KidUpdate struct {
	Name        *string         `json:"name" validate:"omitempty,min=1,max=100"`
	Age         *int            `json:"age" validate:"omitempty,gte=3,lte=18"`
	Avatar      *string         `json:"avatar" validate:"omitempty,max=10"`
	BirthDate   *Date           `json:"birth_date"`
	Preferences *KidPreferences `json:"preferences"`
}

// WeeklyProgress is one day of assignment activity in a stats response.
type WeeklyProgress struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Assigned  int    `json:"assigned"`
	Minutes   int    `json:"minutes"`
}

// KidStatsResponse is the detailed stats payload for a single kid.
type KidStatsResponse struct {
	KidStats
	WeeklyProgress []WeeklyProgress `json:"weekly_progress"`
}
