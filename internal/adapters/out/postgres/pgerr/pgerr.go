// Package pgerr translates PostgreSQL driver errors into domain errors.
// Repositories run application-level existence and uniqueness checks first;
// this translation covers the races those checks cannot close.
package pgerr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"logistics/internal/pkg/errs"
)

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
	serializationFail   = "40001"
	deadlockDetected    = "40P01"

	connectionClass = "08"
)

// Translate maps a PostgreSQL error onto the domain error taxonomy.
// Foreign key violations become reference-not-found errors, unique
// violations become unique-violation errors, and serialization failures,
// deadlocks and connection errors become retryable storage-unavailable
// errors. Anything else is returned unchanged.
func Translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == foreignKeyViolation:
		return errs.NewReferenceNotFoundErrorWithCause(pgErr.ConstraintName, pgErr.Detail, err)
	case pgErr.Code == uniqueViolation:
		return errs.NewUniqueViolationErrorWithCause(pgErr.ConstraintName, pgErr.Detail, err)
	case pgErr.Code == serializationFail, pgErr.Code == deadlockDetected,
		strings.HasPrefix(pgErr.Code, connectionClass):
		return errs.NewStorageUnavailableError(op, err)
	}

	return err
}
