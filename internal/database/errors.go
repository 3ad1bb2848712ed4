package database

import (
	"errors"
	"fmt"

	apperrors "campus-placement-backend/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ClassifyError maps Postgres write races onto ConflictError so callers can retry the
// whole transaction. Every other error, including foreign-key violations for missing
// candidates, is returned wrapped but otherwise unchanged.
func ClassifyError(entity string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return apperrors.NewConflictError(entity, true, fmt.Errorf("unique constraint %s: %w", pgErr.ConstraintName, err))

	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return apperrors.NewConflictError(entity, true, err)

	case pgerrcode.LockNotAvailable:
		return apperrors.NewConflictError(entity, false, err)

	default:
		return err
	}
}

// IsForeignKeyViolation reports whether err is a Postgres foreign-key violation
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// IsUniqueViolation reports whether err is a Postgres unique violation on the named constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
