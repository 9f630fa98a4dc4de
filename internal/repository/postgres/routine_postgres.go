package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

// RoutinePostgres is a PostgreSQL implementation of repository.RoutineRepository.
// Routine rows and their exercise slots are written in one transaction.
type RoutinePostgres struct {
	db *sql.DB
}

// NewRoutinePostgres creates a new RoutinePostgres repository.
func NewRoutinePostgres(db *sql.DB) *RoutinePostgres {
	return &RoutinePostgres{db: db}
}

var _ repository.RoutineRepository = (*RoutinePostgres)(nil)

const routineColumns = `id, name, description, category, difficulty, duration_minutes, age_group, created_by, is_custom, is_active, popularity_score, total_assignments, created_at, updated_at`

func scanRoutine(row rowScanner) (*model.Routine, error) {
	var rt model.Routine
	if err := row.Scan(
		&rt.ID,
		&rt.Name,
		&rt.Description,
		&rt.Category,
		&rt.Difficulty,
		&rt.DurationMinutes,
		&rt.AgeGroup,
		&rt.CreatedBy,
		&rt.IsCustom,
		&rt.IsActive,
		&rt.PopularityScore,
		&rt.TotalAssignments,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rt, nil
}

// Create inserts a routine with its slots and returns the stored record.
func (r *RoutinePostgres) Create(ctx context.Context, rt *model.Routine) (*model.Routine, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	q := fmt.Sprintf(`
		INSERT INTO routines (name, description, category, difficulty, duration_minutes, age_group, created_by, is_custom, popularity_score, total_assignments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s
	`, routineColumns)
	row := tx.QueryRowContext(ctx, q,
		rt.Name,
		rt.Description,
		rt.Category,
		rt.Difficulty,
		rt.DurationMinutes,
		rt.AgeGroup,
		rt.CreatedBy,
		rt.IsCustom,
		rt.PopularityScore,
		rt.TotalAssignments,
	)
	out, err := scanRoutine(row)
	if err != nil {
		return nil, translateError(err)
	}

	out.Exercises, err = insertSlots(ctx, tx, out.ID, rt.Exercises)
	if err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches an active routine visible to the caller, slots hydrated.
func (r *RoutinePostgres) FindByID(ctx context.Context, id uuid.UUID, visibleTo string) (*model.Routine, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM routines
		WHERE id = $1 AND is_active AND (created_by = 'system' OR created_by = $2)
	`, routineColumns)
	rt, err := scanRoutine(r.db.QueryRowContext(ctx, q, id, visibleTo))
	if err != nil {
		return nil, err
	}

	rt.Exercises, err = loadSlots(ctx, r.db, rt.ID)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// List returns a filtered page of active routines visible to the caller,
// slots hydrated, and the total row count for the filter.
func (r *RoutinePostgres) List(ctx context.Context, f model.RoutineFilter, visibleTo string, pq repository.PageQuery) (*repository.PageResult[model.Routine], error) {
	where := `WHERE is_active AND (created_by = 'system' OR created_by = $1)`
	args := []any{visibleTo}

	if f.Category != nil {
		args = append(args, *f.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Difficulty != nil {
		args = append(args, *f.Difficulty)
		where += fmt.Sprintf(" AND difficulty = $%d", len(args))
	}
	if f.DurationMax != nil {
		args = append(args, *f.DurationMax)
		where += fmt.Sprintf(" AND duration_minutes <= $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM routines "+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	args = append(args, pq.Limit, pq.Offset)
	q := fmt.Sprintf(`
		SELECT %s
		FROM routines
		%s
		ORDER BY popularity_score DESC, created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, routineColumns, where, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Routine, 0)
	for rows.Next() {
		rt, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Exercises, err = loadSlots(ctx, r.db, items[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return &repository.PageResult[model.Routine]{
		Items: items,
		Total: total,
	}, nil
}

// Update persists the mutable columns of a custom routine and returns the
// stored record. With replaceSlots the slot list is replaced by rt.Exercises.
func (r *RoutinePostgres) Update(ctx context.Context, rt *model.Routine, replaceSlots bool) (*model.Routine, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	q := fmt.Sprintf(`
		UPDATE routines
		SET name = $1, description = $2, category = $3, difficulty = $4, duration_minutes = $5, age_group = $6, updated_at = now()
		WHERE id = $7 AND created_by = $8 AND is_active
		RETURNING %s
	`, routineColumns)
	row := tx.QueryRowContext(ctx, q,
		rt.Name,
		rt.Description,
		rt.Category,
		rt.Difficulty,
		rt.DurationMinutes,
		rt.AgeGroup,
		rt.ID,
		rt.CreatedBy,
	)
	out, err := scanRoutine(row)
	if err != nil {
		return nil, err
	}

	if replaceSlots {
		if _, err := tx.ExecContext(ctx, `DELETE FROM routine_exercises WHERE routine_id = $1`, out.ID); err != nil {
			return nil, err
		}
		out.Exercises, err = insertSlots(ctx, tx, out.ID, rt.Exercises)
		if err != nil {
			return nil, translateError(err)
		}
	} else {
		out.Exercises, err = loadSlots(ctx, tx, out.ID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate soft-deletes a custom routine created by owner. Returns false
// when no active row matched.
func (r *RoutinePostgres) Deactivate(ctx context.Context, id uuid.UUID, owner string) (bool, error) {
	const q = `
		UPDATE routines
		SET is_active = FALSE, updated_at = now()
		WHERE id = $1 AND created_by = $2 AND is_active
	`
	res, err := r.db.ExecContext(ctx, q, id, owner)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ExistsActive reports whether an active routine with this ID exists.
func (r *RoutinePostgres) ExistsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM routines WHERE id = $1 AND is_active)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CountSlots returns the number of exercise slots in a routine.
func (r *RoutinePostgres) CountSlots(ctx context.Context, id uuid.UUID) (int, error) {
	const q = `SELECT COUNT(*) FROM routine_exercises WHERE routine_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// IncrementAssignments bumps the routine's total assignment counter.
func (r *RoutinePostgres) IncrementAssignments(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE routines SET total_assignments = total_assignments + 1, updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func insertSlots(ctx context.Context, q queryer, routineID uuid.UUID, slots []model.RoutineExercise) ([]model.RoutineExercise, error) {
	const stmt = `
		INSERT INTO routine_exercises (routine_id, exercise_id, position, duration_seconds, repetitions, rest_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	out := make([]model.RoutineExercise, 0, len(slots))
	for _, s := range slots {
		s.RoutineID = routineID
		row := q.QueryRowContext(ctx, stmt, routineID, s.ExerciseID, s.Order, s.DurationSeconds, s.Repetitions, s.RestSeconds)
		if err := row.Scan(&s.ID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// loadSlots fetches the ordered slots of a routine with their exercises
// hydrated.
func loadSlots(ctx context.Context, q queryer, routineID uuid.UUID) ([]model.RoutineExercise, error) {
	stmt := fmt.Sprintf(`
		SELECT re.id, re.routine_id, re.exercise_id, re.position, re.duration_seconds, re.repetitions, re.rest_seconds,
		       %s
		FROM routine_exercises re
		JOIN exercises e ON e.id = re.exercise_id
		WHERE re.routine_id = $1
		ORDER BY re.position
	`, prefixColumns("e", exerciseColumns))
	rows, err := q.QueryContext(ctx, stmt, routineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]model.RoutineExercise, 0)
	for rows.Next() {
		var (
			s                                 model.RoutineExercise
			e                                 model.Exercise
			instructions, benefits, equipment []byte
		)
		if err := rows.Scan(
			&s.ID,
			&s.RoutineID,
			&s.ExerciseID,
			&s.Order,
			&s.DurationSeconds,
			&s.Repetitions,
			&s.RestSeconds,
			&e.ID,
			&e.Name,
			&e.Description,
			&e.Category,
			&e.Difficulty,
			&e.DurationSeconds,
			&e.AgeGroup,
			&instructions,
			&benefits,
			&equipment,
			&e.VideoURL,
			&e.ImageURL,
			&e.CreatedBy,
			&e.IsCustom,
			&e.IsActive,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := jsonbScan(instructions, &e.Instructions); err != nil {
			return nil, err
		}
		if err := jsonbScan(benefits, &e.Benefits); err != nil {
			return nil, err
		}
		if err := jsonbScan(equipment, &e.EquipmentNeeded); err != nil {
			return nil, err
		}
		s.Exercise = &e
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}
