package store

import "errors"

var (
	// ErrConflict reports a write rejected by a uniqueness or exclusion guard.
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
	// ErrIdempotencyConflict reports a replayed idempotency key with different fields.
	ErrIdempotencyConflict = errors.New("idempotency key conflict")
)
