package repository

import (
	"context"

	"jumpingkids/internal/model"
)

// UserRepository defines data access for accounts using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new account. Returns ErrDuplicate when the username
	// is already taken.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns an account by its ID.
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByUsername returns an account by its unique username.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// ExistsByUsername reports whether the username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
