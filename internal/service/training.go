package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
	"jumpingkids/internal/validate"
)

// TrainingService runs live training sessions. A session walks a kid
// through a routine's slots one at a time; completing the last slot or an
// explicit completion call closes it.
type TrainingService interface {
	// Start opens a session for a kid and routine. An optional assignment
	// links the session to the day's schedule and must belong to the same
	// kid. Returns ErrSessionActive when the kid already has a session in
	// progress.
	Start(ctx context.Context, in model.TrainingSessionCreate, userID int64) (*model.TrainingSession, error)

	// Get returns the current state of a session.
	Get(ctx context.Context, id uuid.UUID, userID int64) (*model.TrainingSession, error)

	// CompleteExercise records one finished exercise and advances the
	// session. Finishing the last exercise completes the session.
	CompleteExercise(ctx context.Context, id uuid.UUID, in model.ExerciseCompletion, userID int64) (*model.TrainingSession, error)

	// Complete closes a session with the reported summary, completes the
	// linked assignment if any and folds the results into the kid's
	// stats.
	Complete(ctx context.Context, id uuid.UUID, in model.SessionCompletion, userID int64) (*model.SessionResult, error)

	// Abandon marks an in-progress session as abandoned.
	Abandon(ctx context.Context, id uuid.UUID, userID int64) (*model.TrainingSession, error)
}

type trainingService struct {
	sessions    repository.TrainingRepository
	kids        repository.KidRepository
	routines    repository.RoutineRepository
	assignments repository.AssignmentRepository
}

// NewTrainingService constructs a TrainingService.
func NewTrainingService(sessions repository.TrainingRepository, kids repository.KidRepository, routines repository.RoutineRepository, assignments repository.AssignmentRepository) TrainingService {
	return &trainingService{sessions: sessions, kids: kids, routines: routines, assignments: assignments}
}

func (s *trainingService) Start(ctx context.Context, in model.TrainingSessionCreate, userID int64) (*model.TrainingSession, error) {
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

	total, err := s.routines.CountSlots(ctx, in.RoutineID)
	if err != nil {
		return nil, err
	}

	if in.AssignmentID != nil {
		a, err := s.assignments.FindByID(ctx, *in.AssignmentID, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrAssignmentNotFound
			}
			return nil, err
		}
		if a.KidID != in.KidID {
			return nil, ErrAssignmentNotFound
		}
	}

	created, err := s.sessions.Create(ctx, &model.TrainingSession{
		KidID:          in.KidID,
		AssignmentID:   in.AssignmentID,
		RoutineID:      in.RoutineID,
		Status:         model.TrainingInProgress,
		StartedAt:      time.Now().UTC(),
		TotalExercises: total,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSessionActive
		}
		return nil, err
	}
	return created, nil
}

func (s *trainingService) Get(ctx context.Context, id uuid.UUID, userID int64) (*model.TrainingSession, error) {
	sess, err := s.sessions.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (s *trainingService) CompleteExercise(ctx context.Context, id uuid.UUID, in model.ExerciseCompletion, userID int64) (*model.TrainingSession, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	sess, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if sess.Status != model.TrainingInProgress {
		return nil, ErrSessionNotActive
	}

	sess.ExercisesCompleted++
	sess.CurrentExerciseIndex++

	if sess.ExercisesCompleted >= sess.TotalExercises {
		now := time.Now().UTC()
		sess.Status = model.TrainingCompleted
		sess.CompletedAt = &now
		if sess.TotalTimeMinutes == nil {
			minutes := elapsedMinutes(sess.StartedAt, now)
			sess.TotalTimeMinutes = &minutes
		}
	}

	return s.sessions.Update(ctx, sess)
}

func (s *trainingService) Complete(ctx context.Context, id uuid.UUID, in model.SessionCompletion, userID int64) (*model.SessionResult, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	sess, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess.Status = model.TrainingCompleted
	sess.CompletedAt = &now
	sess.TotalTimeMinutes = &in.TotalTimeMinutes
	sess.ExercisesCompleted = in.ExercisesCompleted
	sess.OverallRating = &in.OverallRating
	sess.Notes = in.Notes

	updated, err := s.sessions.Update(ctx, sess)
	if err != nil {
		return nil, err
	}

	if updated.AssignmentID != nil {
		if err := s.completeAssignment(ctx, *updated.AssignmentID, in, userID, now); err != nil {
			return nil, err
		}
	}

	stats, err := s.applyStats(ctx, updated.KidID, userID, in.TotalTimeMinutes, now)
	if err != nil {
		return nil, err
	}

	return &model.SessionResult{
		Session: updated,
		StatsUpdated: model.StatsDelta{
			NewStreak:    stats.CurrentStreak,
			TotalMinutes: stats.TotalMinutes,
		},
	}, nil
}

func (s *trainingService) Abandon(ctx context.Context, id uuid.UUID, userID int64) (*model.TrainingSession, error) {
	sess, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if sess.Status != model.TrainingInProgress {
		return nil, ErrSessionNotActive
	}

	now := time.Now().UTC()
	sess.Status = model.TrainingAbandoned
	sess.CompletedAt = &now

	return s.sessions.Update(ctx, sess)
}

// completeAssignment mirrors the session summary onto the linked
// assignment. An assignment that disappeared meanwhile is skipped.
func (s *trainingService) completeAssignment(ctx context.Context, id uuid.UUID, in model.SessionCompletion, userID int64, now time.Time) error {
	a, err := s.assignments.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	a.Status = model.AssignmentCompleted
	a.CompletedAt = &now
	a.CompletionTimeMinutes = &in.TotalTimeMinutes
	a.ExercisesCompleted = &in.ExercisesCompleted

	if _, err := s.assignments.Update(ctx, a); err != nil {
		return fmt.Errorf("complete linked assignment: %w", err)
	}
	return nil
}

// applyStats folds a completed session into the kid's stats blob and
// returns the new values.
func (s *trainingService) applyStats(ctx context.Context, kidID uuid.UUID, userID int64, minutes int, now time.Time) (model.KidStats, error) {
	kid, err := s.kids.FindByID(ctx, kidID, userID)
	if err != nil {
		return model.KidStats{}, fmt.Errorf("load kid stats: %w", err)
	}

	stats := kid.Stats
	stats.TotalRoutines++
	stats.ThisWeekCompleted++
	stats.CurrentStreak++
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.TotalMinutes += minutes
	stats.LastActivity = &now

	if err := s.kids.UpdateStats(ctx, kid.ID, stats); err != nil {
		return model.KidStats{}, fmt.Errorf("update kid stats: %w", err)
	}
	return stats, nil
}

func elapsedMinutes(from, to time.Time) int {
	minutes := int(to.Sub(from) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
