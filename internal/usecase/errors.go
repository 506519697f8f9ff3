package usecase

import "errors"

// Service error taxonomy. Handlers translate these to HTTP statuses
// with errors.Is; anything unmatched surfaces as a generic 500.
var (
	ErrValidation             = errors.New("validation failed")
	ErrDuplicateEmail         = errors.New("user already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrNotFoundOrUnauthorized = errors.New("listing not found or unauthorized")
	ErrListingNotFound        = errors.New("listing not found")
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrDateConflict           = errors.New("listing is unavailable for the selected dates")
)
