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

const testAssignmentID = "e1f2a3b4-c5d6-4e7f-8a9b-0c1d2e3f4a51"

func assignmentRows() *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "routine_id", "kid_id", "assigned_date", "status", "assigned_by",
		"completed_at", "completion_time_minutes", "exercises_completed", "notes", "created_at", "updated_at",
	}).AddRow(
		testAssignmentID, testRoutineID, testKidID, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), "pending", int64(1),
		nil, nil, nil, nil, now, nil,
	)
}

func TestAssignmentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssignmentPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO assignments").
			WillReturnRows(assignmentRows())

		a, err := repo.Create(ctx, &model.Assignment{
			RoutineID:    uuid.MustParse(testRoutineID),
			KidID:        uuid.MustParse(testKidID),
			AssignedDate: model.NewDate(2026, 8, 23),
			Status:       model.AssignmentPending,
			AssignedBy:   1,
		})

		require.NoError(t, err)
		assert.Equal(t, model.AssignmentPending, a.Status)
		assert.Equal(t, "2026-08-23", a.AssignedDate.String())
	})

	t.Run("same routine twice on one day", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO assignments").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

		a, err := repo.Create(ctx, &model.Assignment{
			RoutineID:    uuid.MustParse(testRoutineID),
			KidID:        uuid.MustParse(testKidID),
			AssignedDate: model.NewDate(2026, 8, 23),
		})

		assert.Nil(t, a)
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
}

func TestAssignmentPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssignmentPostgres(db)
	ctx := context.Background()

	kidID := uuid.MustParse(testKidID)
	status := model.AssignmentPending

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM assignments a JOIN kids k").
		WithArgs(int64(1), kidID, status).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM assignments a JOIN kids k").
		WithArgs(int64(1), kidID, status, 50, 0).
		WillReturnRows(assignmentRows())

	res, err := repo.List(ctx, 1, model.AssignmentFilter{KidID: &kidID, Status: &status}, repository.PageQuery{Limit: 50, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentPostgres_FindByKidAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssignmentPostgres(db)
	ctx := context.Background()
	kidID := uuid.MustParse(testKidID)
	day := model.NewDate(2026, 8, 23)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM assignments a JOIN kids k").
			WithArgs(kidID, int64(1), day).
			WillReturnRows(assignmentRows())

		a, err := repo.FindByKidAndDate(ctx, kidID, 1, day)

		require.NoError(t, err)
		assert.Equal(t, testAssignmentID, a.ID.String())
	})

	t.Run("none today", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM assignments a JOIN kids k").
			WithArgs(kidID, int64(1), day).
			WillReturnError(sql.ErrNoRows)

		a, err := repo.FindByKidAndDate(ctx, kidID, 1, day)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, a)
	})
}

func TestAssignmentPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssignmentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	minutes := 18
	done := 3
	rows := sqlmock.NewRows([]string{
		"id", "routine_id", "kid_id", "assigned_date", "status", "assigned_by",
		"completed_at", "completion_time_minutes", "exercises_completed", "notes", "created_at", "updated_at",
	}).AddRow(
		testAssignmentID, testRoutineID, testKidID, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), "completed", int64(1),
		now, minutes, done, "¡Muy bien!", now, now,
	)

	mock.ExpectQuery("UPDATE assignments").
		WillReturnRows(rows)

	notes := "¡Muy bien!"
	a, err := repo.Update(ctx, &model.Assignment{
		ID:                    uuid.MustParse(testAssignmentID),
		Status:                model.AssignmentCompleted,
		CompletedAt:           &now,
		CompletionTimeMinutes: &minutes,
		ExercisesCompleted:    &done,
		Notes:                 &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, model.AssignmentCompleted, a.Status)
	require.NotNil(t, a.CompletionTimeMinutes)
	assert.Equal(t, 18, *a.CompletionTimeMinutes)
}
