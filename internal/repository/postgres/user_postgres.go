package postgres

import (
	"context"
	"database/sql"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.PasswordHash,
		&u.UserType,
		&u.Subscription,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new account row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (name, username, password_hash, user_type, subscription, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, username, password_hash, user_type, subscription, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		u.Name,
		u.Username,
		u.PasswordHash,
		u.UserType,
		u.Subscription,
		u.CreatedAt,
		u.UpdatedAt,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// FindByID fetches a single account by its ID.
func (r *UserPostgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
		SELECT id, name, username, password_hash, user_type, subscription, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// FindByUsername fetches a single account by its unique username.
func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
		SELECT id, name, username, password_hash, user_type, subscription, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, q, username))
}

// ExistsByUsername reports whether the username is taken.
func (r *UserPostgres) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
