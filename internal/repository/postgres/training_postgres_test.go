package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

const testSessionID = "f0e1d2c3-b4a5-4968-8776-655443322110"

func sessionRows(status string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "kid_id", "assignment_id", "routine_id", "status", "started_at", "completed_at",
		"current_exercise_index", "exercises_completed", "total_exercises",
		"total_time_minutes", "overall_rating", "notes", "created_at", "updated_at",
	}).AddRow(
		testSessionID, testKidID, nil, testRoutineID, status, now, nil,
		0, 0, 3, nil, nil, nil, now, nil,
	)
}

func TestTrainingPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTrainingPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO training_sessions").
			WillReturnRows(sessionRows("in-progress"))

		s, err := repo.Create(ctx, &model.TrainingSession{
			KidID:          uuid.MustParse(testKidID),
			RoutineID:      uuid.MustParse(testRoutineID),
			Status:         model.TrainingInProgress,
			StartedAt:      time.Now().UTC(),
			TotalExercises: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, model.TrainingInProgress, s.Status)
		assert.Equal(t, 3, s.TotalExercises)
		assert.Nil(t, s.AssignmentID)
	})

	t.Run("kid already mid-session", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO training_sessions").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "uq_training_sessions_active"})

		s, err := repo.Create(ctx, &model.TrainingSession{
			KidID:     uuid.MustParse(testKidID),
			RoutineID: uuid.MustParse(testRoutineID),
			Status:    model.TrainingInProgress,
		})

		assert.Nil(t, s)
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
}

func TestTrainingPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTrainingPostgres(db)
	ctx := context.Background()
	id := uuid.MustParse(testSessionID)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM training_sessions s JOIN kids k").
			WithArgs(id, int64(1)).
			WillReturnRows(sessionRows("in-progress"))

		s, err := repo.FindByID(ctx, id, 1)

		require.NoError(t, err)
		assert.Equal(t, testSessionID, s.ID.String())
	})

	t.Run("not owned", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM training_sessions s JOIN kids k").
			WithArgs(id, int64(99)).
			WillReturnError(sql.ErrNoRows)

		s, err := repo.FindByID(ctx, id, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, s)
	})
}

func TestTrainingPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTrainingPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "kid_id", "assignment_id", "routine_id", "status", "started_at", "completed_at",
		"current_exercise_index", "exercises_completed", "total_exercises",
		"total_time_minutes", "overall_rating", "notes", "created_at", "updated_at",
	}).AddRow(
		testSessionID, testKidID, nil, testRoutineID, "completed", now, now,
		3, 3, 3, 17, 5, nil, now, now,
	)

	mock.ExpectQuery("UPDATE training_sessions").
		WillReturnRows(rows)

	minutes := 17
	rating := 5
	s, err := repo.Update(ctx, &model.TrainingSession{
		ID:                   uuid.MustParse(testSessionID),
		Status:               model.TrainingCompleted,
		CompletedAt:          &now,
		CurrentExerciseIndex: 3,
		ExercisesCompleted:   3,
		TotalTimeMinutes:     &minutes,
		OverallRating:        &rating,
	})

	require.NoError(t, err)
	assert.Equal(t, model.TrainingCompleted, s.Status)
	require.NotNil(t, s.TotalTimeMinutes)
	assert.Equal(t, 17, *s.TotalTimeMinutes)
	require.NotNil(t, s.OverallRating)
	assert.Equal(t, 5, *s.OverallRating)
}
