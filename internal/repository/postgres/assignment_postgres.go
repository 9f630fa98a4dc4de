package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

// AssignmentPostgres is a PostgreSQL implementation of repository.AssignmentRepository.
// Every read joins the kids table so rows are scoped to the owning user.
type AssignmentPostgres struct {
	db *sql.DB
}

// NewAssignmentPostgres creates a new AssignmentPostgres repository.
func NewAssignmentPostgres(db *sql.DB) *AssignmentPostgres {
	return &AssignmentPostgres{db: db}
}

var _ repository.AssignmentRepository = (*AssignmentPostgres)(nil)

const assignmentColumns = `id, routine_id, kid_id, assigned_date, status, assigned_by, completed_at, completion_time_minutes, exercises_completed, notes, created_at, updated_at`

func scanAssignment(row rowScanner) (*model.Assignment, error) {
	var a model.Assignment
	if err := row.Scan(
		&a.ID,
		&a.RoutineID,
		&a.KidID,
		&a.AssignedDate,
		&a.Status,
		&a.AssignedBy,
		&a.CompletedAt,
		&a.CompletionTimeMinutes,
		&a.ExercisesCompleted,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts an assignment row and returns the stored record.
func (r *AssignmentPostgres) Create(ctx context.Context, a *model.Assignment) (*model.Assignment, error) {
	q := fmt.Sprintf(`
		INSERT INTO assignments (routine_id, kid_id, assigned_date, status, assigned_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, assignmentColumns)
	row := r.db.QueryRowContext(ctx, q,
		a.RoutineID,
		a.KidID,
		a.AssignedDate,
		a.Status,
		a.AssignedBy,
	)
	out, err := scanAssignment(row)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// FindByID fetches an assignment whose kid belongs to the given user.
func (r *AssignmentPostgres) FindByID(ctx context.Context, id uuid.UUID, userID int64) (*model.Assignment, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM assignments a
		JOIN kids k ON k.id = a.kid_id
		WHERE a.id = $1 AND k.user_id = $2
	`, prefixColumns("a", assignmentColumns))
	return scanAssignment(r.db.QueryRowContext(ctx, q, id, userID))
}

// List returns a filtered page of assignments for the user's kids, newest
// assigned date first, and the total row count for the filter.
func (r *AssignmentPostgres) List(ctx context.Context, userID int64, f model.AssignmentFilter, pq repository.PageQuery) (*repository.PageResult[model.Assignment], error) {
	where := `WHERE k.user_id = $1`
	args := []any{userID}

	if f.KidID != nil {
		args = append(args, *f.KidID)
		where += fmt.Sprintf(" AND a.kid_id = $%d", len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		where += fmt.Sprintf(" AND a.status = $%d", len(args))
	}
	if f.Date != nil {
		args = append(args, *f.Date)
		where += fmt.Sprintf(" AND a.assigned_date = $%d", len(args))
	}

	const fromClause = `FROM assignments a JOIN kids k ON k.id = a.kid_id`

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) "+fromClause+" "+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	args = append(args, pq.Limit, pq.Offset)
	q := fmt.Sprintf(`
		SELECT %s
		%s
		%s
		ORDER BY a.assigned_date DESC, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, prefixColumns("a", assignmentColumns), fromClause, where, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Assignment]{
		Items: items,
		Total: total,
	}, nil
}

// FindByKidAndDate fetches the assignment of a kid on a calendar day.
func (r *AssignmentPostgres) FindByKidAndDate(ctx context.Context, kidID uuid.UUID, userID int64, day model.Date) (*model.Assignment, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM assignments a
		JOIN kids k ON k.id = a.kid_id
		WHERE a.kid_id = $1 AND k.user_id = $2 AND a.assigned_date = $3
		ORDER BY a.created_at DESC
		LIMIT 1
	`, prefixColumns("a", assignmentColumns))
	return scanAssignment(r.db.QueryRowContext(ctx, q, kidID, userID, day))
}

// Update persists status and completion columns and returns the stored record.
func (r *AssignmentPostgres) Update(ctx context.Context, a *model.Assignment) (*model.Assignment, error) {
	q := fmt.Sprintf(`
		UPDATE assignments
		SET status = $1, completed_at = $2, completion_time_minutes = $3, exercises_completed = $4, notes = $5, updated_at = now()
		WHERE id = $6
		RETURNING %s
	`, assignmentColumns)
	row := r.db.QueryRowContext(ctx, q,
		a.Status,
		a.CompletedAt,
		a.CompletionTimeMinutes,
		a.ExercisesCompleted,
		a.Notes,
		a.ID,
	)
	return scanAssignment(row)
}
