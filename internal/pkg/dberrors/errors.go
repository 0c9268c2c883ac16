// Package dberrors classifies low-level PostgreSQL errors so repositories
// can translate them into domain sentinels.
package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// IsDuplicateConstraintError reports whether err is a unique violation on
// the named constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolationCode &&
		pgErr.ConstraintName == constraintName
}
