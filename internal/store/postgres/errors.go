package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"salonbook/backend/internal/store"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"

	constraintNoOverlap  = "appointments_no_overlap"
	constraintPrimaryKey = "appointments_pkey"
)

// translateWriteError maps constraint violations raised by the schedule guards to
// store.ErrConflict. Other errors pass through.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgExclusionViolation:
		if pgErr.ConstraintName == constraintNoOverlap {
			return store.ErrConflict
		}
	case pgUniqueViolation:
		if pgErr.ConstraintName == constraintPrimaryKey {
			return store.ErrIdempotencyConflict
		}
		return store.ErrConflict
	}
	return err
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
