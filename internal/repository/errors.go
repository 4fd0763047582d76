package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when an insert violates a uniqueness or
	// exclusion constraint (overlapping active booking, duplicate email).
	ErrConflict = errors.New("constraint violation")
)
