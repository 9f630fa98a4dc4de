package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
	"jumpingkids/internal/validate"
)

// ExerciseListResult is the result of a catalog listing.
type ExerciseListResult struct {
	Items []model.Exercise
	Total int
}

// ExerciseService covers the exercise catalog. Listings mix the system
// catalog with the caller's own custom exercises; writes only ever touch
// the caller's rows.
type ExerciseService interface {
	// List returns a page of exercises visible to the user, newest first.
	List(ctx context.Context, f model.ExerciseFilter, userID int64, limit, offset int) (*ExerciseListResult, error)

	// Get returns one visible exercise by id.
	Get(ctx context.Context, id uuid.UUID, userID int64) (*model.Exercise, error)

	// Create adds a custom exercise owned by the user.
	Create(ctx context.Context, in model.ExerciseCreate, userID int64) (*model.Exercise, error)

	// Update applies a partial update to an exercise the user owns.
	// Catalog exercises cannot be edited and behave as not found.
	Update(ctx context.Context, id uuid.UUID, in model.ExerciseUpdate, userID int64) (*model.Exercise, error)

	// Delete deactivates an exercise the user owns.
	Delete(ctx context.Context, id uuid.UUID, userID int64) error

	// Categories lists the exercise categories in catalog order.
	Categories() []model.ExerciseCategory

	// AgeGroups lists the supported age brackets in ascending order.
	AgeGroups() []model.AgeGroup
}

type exerciseService struct {
	exercises repository.ExerciseRepository
}

// NewExerciseService constructs an ExerciseService.
func NewExerciseService(exercises repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exercises: exercises}
}

func (s *exerciseService) List(ctx context.Context, f model.ExerciseFilter, userID int64, limit, offset int) (*ExerciseListResult, error) {
	page, err := s.exercises.List(ctx, f, creatorKey(userID), clampPage(limit, offset))
	if err != nil {
		return nil, err
	}
	return &ExerciseListResult{Items: page.Items, Total: page.Total}, nil
}

func (s *exerciseService) Get(ctx context.Context, id uuid.UUID, userID int64) (*model.Exercise, error) {
	e, err := s.exercises.FindByID(ctx, id, creatorKey(userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *exerciseService) Create(ctx context.Context, in model.ExerciseCreate, userID int64) (*model.Exercise, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	// JSONB columns hold arrays, never null.
	if in.Benefits == nil {
		in.Benefits = []string{}
	}
	if in.EquipmentNeeded == nil {
		in.EquipmentNeeded = []string{}
	}

	return s.exercises.Create(ctx, &model.Exercise{
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Difficulty:      in.Difficulty,
		DurationSeconds: in.DurationSeconds,
		AgeGroup:        in.AgeGroup,
		Instructions:    in.Instructions,
		Benefits:        in.Benefits,
		EquipmentNeeded: in.EquipmentNeeded,
		VideoURL:        in.VideoURL,
		ImageURL:        in.ImageURL,
		CreatedBy:       creatorKey(userID),
		IsCustom:        true,
	})
}

func (s *exerciseService) Update(ctx context.Context, id uuid.UUID, in model.ExerciseUpdate, userID int64) (*model.Exercise, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	e, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if e.CreatedBy != creatorKey(userID) {
		return nil, ErrExerciseNotFound
	}

	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Difficulty != nil {
		e.Difficulty = *in.Difficulty
	}
	if in.DurationSeconds != nil {
		e.DurationSeconds = *in.DurationSeconds
	}
	if in.AgeGroup != nil {
		e.AgeGroup = *in.AgeGroup
	}
	if in.Instructions != nil {
		e.Instructions = in.Instructions
	}
	if in.Benefits != nil {
		e.Benefits = in.Benefits
	}
	if in.EquipmentNeeded != nil {
		e.EquipmentNeeded = in.EquipmentNeeded
	}
	if in.VideoURL != nil {
		e.VideoURL = in.VideoURL
	}
	if in.ImageURL != nil {
		e.ImageURL = in.ImageURL
	}

	updated, err := s.exercises.Update(ctx, e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *exerciseService) Delete(ctx context.Context, id uuid.UUID, userID int64) error {
	ok, err := s.exercises.Deactivate(ctx, id, creatorKey(userID))
	if err != nil {
		return err
	}
	if !ok {
		return ErrExerciseNotFound
	}
	return nil
}

func (s *exerciseService) Categories() []model.ExerciseCategory {
	return model.Categories()
}

func (s *exerciseService) AgeGroups() []model.AgeGroup {
	return model.AgeGroups()
}
