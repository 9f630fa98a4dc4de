package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
	"jumpingkids/internal/validate"
)

// AssignmentListResult is the result of an assignment listing.
type AssignmentListResult struct {
	Items []model.Assignment
	Total int
}

// AssignmentService schedules routines for kids. Assignments are visible
// to the tutor who owns the kid, regardless of who created the routine.
type AssignmentService interface {
	// List returns a page of assignments across the user's kids, newest
	// assigned date first, with their routines attached.
	List(ctx context.Context, userID int64, f model.AssignmentFilter, limit, offset int) (*AssignmentListResult, error)

	// Create schedules a routine for a kid, today unless a date is given.
	// Returns ErrAlreadyAssigned when that kid already has the routine on
	// that date.
	Create(ctx context.Context, in model.AssignmentCreate, userID int64) (*model.Assignment, error)

	// ListToday returns today's assignments across the user's kids with
	// their routines attached.
	ListToday(ctx context.Context, userID int64) ([]model.Assignment, error)

	// KidToday returns today's assignment for one kid with its routine
	// attached, or nil when the kid has nothing scheduled today.
	KidToday(ctx context.Context, kidID uuid.UUID, userID int64) (*model.Assignment, error)

	// Complete marks an assignment completed with the reported details.
	Complete(ctx context.Context, id uuid.UUID, in model.AssignmentComplete, userID int64) (*model.Assignment, error)
}

type assignmentService struct {
	assignments repository.AssignmentRepository
	kids        repository.KidRepository
	routines    repository.RoutineRepository
}

// NewAssignmentService constructs an AssignmentService.
func NewAssignmentService(assignments repository.AssignmentRepository, kids repository.KidRepository, routines repository.RoutineRepository) AssignmentService {
	return &assignmentService{assignments: assignments, kids: kids, routines: routines}
}

func (s *assignmentService) List(ctx context.Context, userID int64, f model.AssignmentFilter, limit, offset int) (*AssignmentListResult, error) {
	page, err := s.assignments.List(ctx, userID, f, clampPage(limit, offset))
	if err != nil {
		return nil, err
	}
	for i := range page.Items {
		if err := s.attachRoutine(ctx, &page.Items[i], userID); err != nil {
			return nil, err
		}
	}
	return &AssignmentListResult{Items: page.Items, Total: page.Total}, nil
}

func (s *assignmentService) Create(ctx context.Context, in model.AssignmentCreate, userID int64) (*model.Assignment, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	if _, err := s.kids.FindByID(ctx, in.KidID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKidNotFound
		}
		return nil, err
	}

	active, err := s.routines.ExistsActive(ctx, in.RoutineID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrRoutineNotFound
	}

	day := in.AssignedDate
	if day.IsZero() {
		day = model.Today()
	}

	created, err := s.assignments.Create(ctx, &model.Assignment{
		RoutineID:    in.RoutineID,
		KidID:        in.KidID,
		AssignedDate: day,
		Status:       model.AssignmentPending,
		AssignedBy:   userID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyAssigned
		}
		return nil, err
	}

	// The popularity counter is best effort.
	_ = s.routines.IncrementAssignments(ctx, in.RoutineID)

	if err := s.attachRoutine(ctx, created, userID); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *assignmentService) ListToday(ctx context.Context, userID int64) ([]model.Assignment, error) {
	today := model.Today()
	page, err := s.assignments.List(ctx, userID, model.AssignmentFilter{Date: &today}, repository.PageQuery{Limit: 100})
	if err != nil {
		return nil, err
	}

	items := page.Items
	for i := range items {
		if err := s.attachRoutine(ctx, &items[i], userID); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *assignmentService) KidToday(ctx context.Context, kidID uuid.UUID, userID int64) (*model.Assignment, error) {
	if _, err := s.kids.FindByID(ctx, kidID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKidNotFound
		}
		return nil, err
	}

	a, err := s.assignments.FindByKidAndDate(ctx, kidID, userID, model.Today())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := s.attachRoutine(ctx, a, userID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *assignmentService) Complete(ctx context.Context, id uuid.UUID, in model.AssignmentComplete, userID int64) (*model.Assignment, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	a, err := s.assignments.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	a.Status = model.AssignmentCompleted
	a.CompletedAt = &now
	a.CompletionTimeMinutes = &in.CompletionTimeMinutes
	a.ExercisesCompleted = &in.ExercisesCompleted
	a.Notes = in.Notes

	updated, err := s.assignments.Update(ctx, a)
	if err != nil {
		return nil, err
	}
	if err := s.attachRoutine(ctx, updated, userID); err != nil {
		return nil, err
	}
	return updated, nil
}

// attachRoutine hydrates the assignment with its routine. A routine that
// was deactivated since assignment stays detached.
func (s *assignmentService) attachRoutine(ctx context.Context, a *model.Assignment, userID int64) error {
	r, err := s.routines.FindByID(ctx, a.RoutineID, creatorKey(userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	a.Routine = r
	return nil
}
