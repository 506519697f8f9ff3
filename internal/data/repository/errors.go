package repository

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert hits a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

// ErrDateConflict is returned when a booking overlaps an existing one
// for the same listing.
var ErrDateConflict = errors.New("booking dates conflict")
