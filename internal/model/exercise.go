package model

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseCategory classifies exercises. The Spanish labels are part of
// the API contract.
type ExerciseCategory string

const (
	CategoryCardio       ExerciseCategory = "Cardio"
	CategoryStrength     ExerciseCategory = "Fuerza"
	CategoryFlexibility  ExerciseCategory = "Flexibilidad"
	CategoryBalance      ExerciseCategory = "Equilibrio"
	CategoryCoordination ExerciseCategory = "Coordinación"
)

// Valid reports whether the value is a known category.
func (c ExerciseCategory) Valid() bool {
	switch c {
	case CategoryCardio, CategoryStrength, CategoryFlexibility, CategoryBalance, CategoryCoordination:
		return true
	}
	return false
}

// Categories lists every category in catalog order.
func Categories() []ExerciseCategory {
	return []ExerciseCategory{
		CategoryCardio,
		CategoryStrength,
		CategoryFlexibility,
		CategoryBalance,
		CategoryCoordination,
	}
}

// AgeGroup is the age bracket an exercise or routine targets.
type AgeGroup string

const (
	AgeGroupToddler AgeGroup = "3-5"
	AgeGroupChild   AgeGroup = "6-8"
	AgeGroupPreteen AgeGroup = "9-12"
)

// Valid reports whether the value is a known age group.
func (a AgeGroup) Valid() bool {
	switch a {
	case AgeGroupToddler, AgeGroupChild, AgeGroupPreteen:
		return true
	}
	return false
}

// AgeGroups lists every age bracket in ascending order.
func AgeGroups() []AgeGroup {
	return []AgeGroup{AgeGroupToddler, AgeGroupChild, AgeGroupPreteen}
}

// SystemAuthor marks catalog rows owned by the product rather than a user.
const SystemAuthor = "system"

// Exercise is one activity in the catalog. Catalog rows are created at
// seed time with CreatedBy set to SystemAuthor; custom rows belong to the
// tutor who created them.
type Exercise struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Category        ExerciseCategory `json:"category"`
	Difficulty      DifficultyLevel  `json:"difficulty"`
	DurationSeconds int              `json:"duration_seconds"`
	AgeGroup        AgeGroup         `json:"age_group"`
	Instructions    []string         `json:"instructions"`
	Benefits        []string         `json:"benefits"`
	EquipmentNeeded []string         `json:"equipment_needed"`
	VideoURL        *string          `json:"video_url"`
	ImageURL        *string          `json:"image_url"`
	CreatedBy       string           `json:"created_by"`
	IsCustom        bool             `json:"is_custom"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
}

// ExerciseCreate carries the fields accepted when creating a custom
// exercise.
type ExerciseCreate struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Description     string           `json:"description" validate:"required,min=1,max=1000"`
	Category        ExerciseCategory `json:"category" validate:"required,oneof=Cardio Fuerza Flexibilidad Equilibrio Coordinación"`
	Difficulty      DifficultyLevel  `json:"difficulty" validate:"required,oneof=Principiante Intermedio Avanzado"`
	DurationSeconds int              `json:"duration_seconds" validate:"required,gte=10,lte=600"`
	AgeGroup        AgeGroup         `json:"age_group" validate:"required,oneof=3-5 6-8 9-12"`
	Instructions    []string         `json:"instructions" validate:"required,min=1"`
	Benefits        []string         `json:"benefits"`
	EquipmentNeeded []string         `json:"equipment_needed"`
	VideoURL        *string          `json:"video_url" validate:"omitempty,url"`
	ImageURL        *string          `json:"image_url" validate:"omitempty,url"`
}

// ExerciseUpdate carries the optional fields of a partial update.
type ExerciseUpdate struct {
	Name            *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string           `json:"description" validate:"omitempty,min=1,max=1000"`
	Category        *ExerciseCategory `json:"category" validate:"omitempty,oneof=Cardio Fuerza Flexibilidad Equilibrio Coordinación"`
	Difficulty      *DifficultyLevel  `json:"difficulty" validate:"omitempty,oneof=Principiante Intermedio Avanzado"`
	DurationSeconds *int              `json:"duration_seconds" validate:"omitempty,gte=10,lte=600"`
	AgeGroup        *AgeGroup         `json:"age_group" validate:"omitempty,oneof=3-5 6-8 9-12"`
	Instructions    []string          `json:"instructions" validate:"omitempty,min=1"`
	Benefits        []string          `json:"benefits"`
	EquipmentNeeded []string          `json:"equipment_needed"`
	VideoURL        *string           `json:"video_url" validate:"omitempty,url"`
	ImageURL        *string           `json:"image_url" validate:"omitempty,url"`
}

// ExerciseFilter narrows catalog listings.
type ExerciseFilter struct {
	Category   *ExerciseCategory
	Difficulty *DifficultyLevel
	AgeGroup   *AgeGroup
	Search     string
}
