package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

// ExercisePostgres is a PostgreSQL implementation of repository.ExerciseRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ExercisePostgres struct {
	db *sql.DB
}

// NewExercisePostgres creates a new ExercisePostgres repository.
func NewExercisePostgres(db *sql.DB) *ExercisePostgres {
	return &ExercisePostgres{db: db}
}

var _ repository.ExerciseRepository = (*ExercisePostgres)(nil)

const exerciseColumns = `id, name, description, category, difficulty, duration_seconds, age_group, instructions, benefits, equipment_needed, video_url, image_url, created_by, is_custom, is_active, created_at, updated_at`

func scanExercise(row rowScanner) (*model.Exercise, error) {
	var (
		e                                 model.Exercise
		instructions, benefits, equipment []byte
	)
	if err := row.Scan(
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
	return &e, nil
}

// Create inserts a new exercise row and returns the stored record.
func (r *ExercisePostgres) Create(ctx context.Context, e *model.Exercise) (*model.Exercise, error) {
	instructions, err := jsonbValue(e.Instructions)
	if err != nil {
		return nil, err
	}
	benefits, err := jsonbValue(e.Benefits)
	if err != nil {
		return nil, err
	}
	equipment, err := jsonbValue(e.EquipmentNeeded)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		INSERT INTO exercises (name, description, category, difficulty, duration_seconds, age_group, instructions, benefits, equipment_needed, video_url, image_url, created_by, is_custom)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s
	`, exerciseColumns)
	row := r.db.QueryRowContext(ctx, q,
		e.Name,
		e.Description,
		e.Category,
		e.Difficulty,
		e.DurationSeconds,
		e.AgeGroup,
		instructions,
		benefits,
		equipment,
		e.VideoURL,
		e.ImageURL,
		e.CreatedBy,
		e.IsCustom,
	)
	return scanExercise(row)
}

// FindByID fetches an active exercise visible to the caller.
func (r *ExercisePostgres) FindByID(ctx context.Context, id uuid.UUID, visibleTo string) (*model.Exercise, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM exercises
		WHERE id = $1 AND is_active AND (created_by = 'system' OR created_by = $2)
	`, exerciseColumns)
	return scanExercise(r.db.QueryRowContext(ctx, q, id, visibleTo))
}

// List returns a filtered page of active exercises visible to the caller and
// the total row count for the filter.
func (r *ExercisePostgres) List(ctx context.Context, f model.ExerciseFilter, visibleTo string, pq repository.PageQuery) (*repository.PageResult[model.Exercise], error) {
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
	if f.AgeGroup != nil {
		args = append(args, *f.AgeGroup)
		where += fmt.Sprintf(" AND age_group = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM exercises "+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	args = append(args, pq.Limit, pq.Offset)
	q := fmt.Sprintf(`
		SELECT %s
		FROM exercises
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, exerciseColumns, where, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Exercise]{
		Items: items,
		Total: total,
	}, nil
}

// Update persists the mutable columns of a custom exercise and returns the
// stored record. The row must be active and created by e.CreatedBy.
func (r *ExercisePostgres) Update(ctx context.Context, e *model.Exercise) (*model.Exercise, error) {
	instructions, err := jsonbValue(e.Instructions)
	if err != nil {
		return nil, err
	}
	benefits, err := jsonbValue(e.Benefits)
	if err != nil {
		return nil, err
	}
	equipment, err := jsonbValue(e.EquipmentNeeded)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		UPDATE exercises
		SET name = $1, description = $2, category = $3, difficulty = $4, duration_seconds = $5, age_group = $6,
		    instructions = $7, benefits = $8, equipment_needed = $9, video_url = $10, image_url = $11, updated_at = now()
		WHERE id = $12 AND created_by = $13 AND is_active
		RETURNING %s
	`, exerciseColumns)
	row := r.db.QueryRowContext(ctx, q,
		e.Name,
		e.Description,
		e.Category,
		e.Difficulty,
		e.DurationSeconds,
		e.AgeGroup,
		instructions,
		benefits,
		equipment,
		e.VideoURL,
		e.ImageURL,
		e.ID,
		e.CreatedBy,
	)
	return scanExercise(row)
}

// Deactivate soft-deletes a custom exercise created by owner. Returns false
// when no active row matched.
func (r *ExercisePostgres) Deactivate(ctx context.Context, id uuid.UUID, owner string) (bool, error) {
	const q = `
		UPDATE exercises
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
