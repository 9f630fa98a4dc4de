package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

// KidPostgres is a PostgreSQL implementation of repository.KidRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type KidPostgres struct {
	db *sql.DB
}

// NewKidPostgres creates a new KidPostgres repository.
func NewKidPostgres(db *sql.DB) *KidPostgres {
	return &KidPostgres{db: db}
}

var _ repository.KidRepository = (*KidPostgres)(nil)

func scanKid(row rowScanner) (*model.Kid, error) {
	var (
		k            model.Kid
		prefs, stats []byte
	)
	if err := row.Scan(
		&k.ID,
		&k.UserID,
		&k.Name,
		&k.Age,
		&k.Avatar,
		&k.BirthDate,
		&prefs,
		&stats,
		&k.IsActive,
		&k.CreatedAt,
		&k.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := jsonbScan(prefs, &k.Preferences); err != nil {
		return nil, err
	}
	if err := jsonbScan(stats, &k.Stats); err != nil {
		return nil, err
	}
	return &k, nil
}

// Create inserts a new kid row and returns the stored record.
func (r *KidPostgres) Create(ctx context.Context, k *model.Kid) (*model.Kid, error) {
	prefs, err := jsonbValue(k.Preferences)
	if err != nil {
		return nil, err
	}
	stats, err := jsonbValue(k.Stats)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO kids (user_id, name, age, avatar, birth_date, preferences, stats)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, name, age, avatar, birth_date, preferences, stats, is_active, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		k.UserID,
		k.Name,
		k.Age,
		k.Avatar,
		k.BirthDate,
		prefs,
		stats,
	)
	return scanKid(row)
}

// ListByUser returns the active kids owned by a user, oldest first.
func (r *KidPostgres) ListByUser(ctx context.Context, userID int64) ([]model.Kid, error) {
	const q = `
		SELECT id, user_id, name, age, avatar, birth_date, preferences, stats, is_active, created_at, updated_at
		FROM kids
		WHERE user_id = $1 AND is_active
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kids := make([]model.Kid, 0)
	for rows.Next() {
		k, err := scanKid(rows)
		if err != nil {
			return nil, err
		}
		kids = append(kids, *k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return kids, nil
}

// FindByID fetches an active kid owned by the given user.
func (r *KidPostgres) FindByID(ctx context.Context, id uuid.UUID, userID int64) (*model.Kid, error) {
	const q = `
		SELECT id, user_id, name, age, avatar, birth_date, preferences, stats, is_active, created_at, updated_at
		FROM kids
		WHERE id = $1 AND user_id = $2 AND is_active
	`
	return scanKid(r.db.QueryRowContext(ctx, q, id, userID))
}

// Update persists the editable columns of a kid and returns the stored record.
func (r *KidPostgres) Update(ctx context.Context, k *model.Kid) (*model.Kid, error) {
	prefs, err := jsonbValue(k.Preferences)
	if err != nil {
		return nil, err
	}

	const q = `
		UPDATE kids
		SET name = $1, age = $2, avatar = $3, birth_date = $4, preferences = $5, updated_at = now()
		WHERE id = $6 AND user_id = $7 AND is_active
		RETURNING id, user_id, name, age, avatar, birth_date, preferences, stats, is_active, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		k.Name,
		k.Age,
		k.Avatar,
		k.BirthDate,
		prefs,
		k.ID,
		k.UserID,
	)
	return scanKid(row)
}

// UpdateStats replaces the stats blob of a kid.
func (r *KidPostgres) UpdateStats(ctx context.Context, id uuid.UUID, stats model.KidStats) error {
	blob, err := jsonbValue(stats)
	if err != nil {
		return err
	}

	const q = `UPDATE kids SET stats = $1, updated_at = now() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, q, blob, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Deactivate soft-deletes a kid. Returns false when no active row matched.
func (r *KidPostgres) Deactivate(ctx context.Context, id uuid.UUID, userID int64) (bool, error) {
	const q = `
		UPDATE kids
		SET is_active = FALSE, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND is_active
	`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DailyActivity aggregates assignment counts and completed minutes per day
// over [from, to], ordered by day ascending.
func (r *KidPostgres) DailyActivity(ctx context.Context, id uuid.UUID, from, to model.Date) ([]model.WeeklyProgress, error) {
	const q = `
		SELECT assigned_date,
		       COUNT(*) FILTER (WHERE status = 'completed') AS completed,
		       COUNT(*) AS assigned,
		       COALESCE(SUM(completion_time_minutes) FILTER (WHERE status = 'completed'), 0) AS minutes
		FROM assignments
		WHERE kid_id = $1 AND assigned_date BETWEEN $2 AND $3
		GROUP BY assigned_date
		ORDER BY assigned_date
	`
	rows, err := r.db.QueryContext(ctx, q, id, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]model.WeeklyProgress, 0)
	for rows.Next() {
		var (
			day model.Date
			wp  model.WeeklyProgress
		)
		if err := rows.Scan(&day, &wp.Completed, &wp.Assigned, &wp.Minutes); err != nil {
			return nil, err
		}
		wp.Date = day.String()
		days = append(days, wp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}
