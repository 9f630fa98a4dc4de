package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"jumpingkids/internal/repository"
)

// Postgres error code for unique_violation.
const uniqueViolationCode = "23505"

// translateError maps driver-specific errors onto repository sentinels.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return repository.ErrDuplicate
	}
	return err
}
