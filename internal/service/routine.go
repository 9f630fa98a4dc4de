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

// Slots rest for ten seconds unless told otherwise.
const defaultRestSeconds = 10

// RoutineListResult is the result of a routine listing.
type RoutineListResult struct {
	Items []model.Routine
	Total int
}

// RoutineService covers routines and their exercise slots. Like the
// exercise catalog, listings mix system routines with the caller's own.
type RoutineService interface {
	// List returns a page of routines visible to the user, most popular
	// first, slots included.
	List(ctx context.Context, f model.RoutineFilter, userID int64, limit, offset int) (*RoutineListResult, error)

	// Get returns one visible routine by id, slots included.
	Get(ctx context.Context, id uuid.UUID, userID int64) (*model.Routine, error)

	// Create adds a custom routine owned by the user. Every slot must
	// reference a visible exercise and carry a distinct order value.
	Create(ctx context.Context, in model.RoutineCreate, userID int64) (*model.Routine, error)

	// Update applies a partial update to a routine the user owns. A
	// non-nil Exercises slice replaces the whole slot list.
	Update(ctx context.Context, id uuid.UUID, in model.RoutineUpdate, userID int64) (*model.Routine, error)

	// Delete deactivates a routine the user owns.
	Delete(ctx context.Context, id uuid.UUID, userID int64) error
}

type routineService struct {
	routines  repository.RoutineRepository
	exercises repository.ExerciseRepository
}

// NewRoutineService constructs a RoutineService.
func NewRoutineService(routines repository.RoutineRepository, exercises repository.ExerciseRepository) RoutineService {
	return &routineService{routines: routines, exercises: exercises}
}

func (s *routineService) List(ctx context.Context, f model.RoutineFilter, userID int64, limit, offset int) (*RoutineListResult, error) {
	page, err := s.routines.List(ctx, f, creatorKey(userID), clampPage(limit, offset))
	if err != nil {
		return nil, err
	}
	return &RoutineListResult{Items: page.Items, Total: page.Total}, nil
}

func (s *routineService) Get(ctx context.Context, id uuid.UUID, userID int64) (*model.Routine, error) {
	r, err := s.routines.FindByID(ctx, id, creatorKey(userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *routineService) Create(ctx context.Context, in model.RoutineCreate, userID int64) (*model.Routine, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	slots, err := s.buildSlots(ctx, in.Exercises, userID)
	if err != nil {
		return nil, err
	}

	return s.routines.Create(ctx, &model.Routine{
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Difficulty:      in.Difficulty,
		DurationMinutes: in.DurationMinutes,
		AgeGroup:        in.AgeGroup,
		Exercises:       slots,
		CreatedBy:       creatorKey(userID),
		IsCustom:        true,
	})
}

func (s *routineService) Update(ctx context.Context, id uuid.UUID, in model.RoutineUpdate, userID int64) (*model.Routine, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	r, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if r.CreatedBy != creatorKey(userID) {
		return nil, ErrRoutineNotFound
	}

	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Category != nil {
		r.Category = *in.Category
	}
	if in.Difficulty != nil {
		r.Difficulty = *in.Difficulty
	}
	if in.DurationMinutes != nil {
		r.DurationMinutes = *in.DurationMinutes
	}
	if in.AgeGroup != nil {
		r.AgeGroup = *in.AgeGroup
	}

	replaceSlots := in.Exercises != nil
	if replaceSlots {
		slots, err := s.buildSlots(ctx, in.Exercises, userID)
		if err != nil {
			return nil, err
		}
		r.Exercises = slots
	}

	updated, err := s.routines.Update(ctx, r, replaceSlots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *routineService) Delete(ctx context.Context, id uuid.UUID, userID int64) error {
	ok, err := s.routines.Deactivate(ctx, id, creatorKey(userID))
	if err != nil {
		return err
	}
	if !ok {
		return ErrRoutineNotFound
	}
	return nil
}

// buildSlots turns slot input into routine exercises, checking that each
// referenced exercise is visible to the user and each order is unique.
func (s *routineService) buildSlots(ctx context.Context, in []model.RoutineExerciseInput, userID int64) ([]model.RoutineExercise, error) {
	slots := make([]model.RoutineExercise, 0, len(in))
	seen := make(map[int]bool, len(in))
	for _, slot := range in {
		if seen[slot.Order] {
			return nil, ErrSlotOrderTaken
		}
		seen[slot.Order] = true

		if _, err := s.exercises.FindByID(ctx, slot.ExerciseID, creatorKey(userID)); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrExerciseNotFound
			}
			return nil, err
		}

		rest := defaultRestSeconds
		if slot.RestSeconds != nil {
			rest = *slot.RestSeconds
		}
		slots = append(slots, model.RoutineExercise{
			ExerciseID:      slot.ExerciseID,
			Order:           slot.Order,
			DurationSeconds: slot.DurationSeconds,
			Repetitions:     slot.Repetitions,
			RestSeconds:     rest,
		})
	}
	return slots, nil
}
