package seed

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestEnsureSeeded_InsertsCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	for range catalogExercises {
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM exercises").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO exercises").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	err = EnsureSeeded(context.Background(), db, time.UTC, false)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSeeded_SkipsExistingRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	for range catalogExercises {
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM exercises").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	}
	for _, u := range demoUsers {
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM users").
			WithArgs(u.Username).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	}
	mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM routines").
		WithArgs(demoRoutineName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = EnsureSeeded(context.Background(), db, time.UTC, true)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSeeded_CreatesDemoRoutineInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	for range catalogExercises {
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM exercises").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	}
	for range demoUsers {
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	}
	mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM routines").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO routines").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("e7a2c7cc-0000-0000-0000-000000000001"))
	for range demoRoutineSlots {
		mock.ExpectExec("INSERT INTO routine_exercises").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err = EnsureSeeded(context.Background(), db, time.UTC, true)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSeeded_FailsWhenSlotExerciseMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	for range catalogExercises {
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM exercises").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	}
	for range demoUsers {
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	}
	mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM routines").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO routines").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("e7a2c7cc-0000-0000-0000-000000000001"))
	mock.ExpectExec("INSERT INTO routine_exercises").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = EnsureSeeded(context.Background(), db, time.UTC, true)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing exercise")
}
