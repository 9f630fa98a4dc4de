package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

// TrainingPostgres is a PostgreSQL implementation of repository.TrainingRepository.
// Every read joins the kids table so rows are scoped to the owning user.
type TrainingPostgres struct {
	db *sql.DB
}

// NewTrainingPostgres creates a new TrainingPostgres repository.
func NewTrainingPostgres(db *sql.DB) *TrainingPostgres {
	return &TrainingPostgres{db: db}
}

var _ repository.TrainingRepository = (*TrainingPostgres)(nil)

const sessionColumns = `id, kid_id, assignment_id, routine_id, status, started_at, completed_at, current_exercise_index, exercises_completed, total_exercises, total_time_minutes, overall_rating, notes, created_at, updated_at`

func scanSession(row rowScanner) (*model.TrainingSession, error) {
	var s model.TrainingSession
	if err := row.Scan(
		&s.ID,
		&s.KidID,
		&s.AssignmentID,
		&s.RoutineID,
		&s.Status,
		&s.StartedAt,
		&s.CompletedAt,
		&s.CurrentExerciseIndex,
		&s.ExercisesCompleted,
		&s.TotalExercises,
		&s.TotalTimeMinutes,
		&s.OverallRating,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a session row and returns the stored record. A kid with a
// session already in progress trips the partial unique index, reported as
// repository.ErrDuplicate.
func (r *TrainingPostgres) Create(ctx context.Context, s *model.TrainingSession) (*model.TrainingSession, error) {
	q := fmt.Sprintf(`
		INSERT INTO training_sessions (kid_id, assignment_id, routine_id, status, started_at, total_exercises)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, sessionColumns)
	row := r.db.QueryRowContext(ctx, q,
		s.KidID,
		s.AssignmentID,
		s.RoutineID,
		s.Status,
		s.StartedAt,
		s.TotalExercises,
	)
	out, err := scanSession(row)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// FindByID fetches a session whose kid belongs to the given user.
func (r *TrainingPostgres) FindByID(ctx context.Context, id uuid.UUID, userID int64) (*model.TrainingSession, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM training_sessions s
		JOIN kids k ON k.id = s.kid_id
		WHERE s.id = $1 AND k.user_id = $2
	`, prefixColumns("s", sessionColumns))
	return scanSession(r.db.QueryRowContext(ctx, q, id, userID))
}

// Update persists progress and completion columns and returns the stored
// record.
func (r *TrainingPostgres) Update(ctx context.Context, s *model.TrainingSession) (*model.TrainingSession, error) {
	q := fmt.Sprintf(`
		UPDATE training_sessions
		SET status = $1, completed_at = $2, current_exercise_index = $3, exercises_completed = $4,
		    total_time_minutes = $5, overall_rating = $6, notes = $7, updated_at = now()
		WHERE id = $8
		RETURNING %s
	`, sessionColumns)
	row := r.db.QueryRowContext(ctx, q,
		s.Status,
		s.CompletedAt,
		s.CurrentExerciseIndex,
		s.ExercisesCompleted,
		s.TotalTimeMinutes,
		s.OverallRating,
		s.Notes,
		s.ID,
	)
	return scanSession(row)
}
