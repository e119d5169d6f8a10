package repositories

import "errors"

var (
	// ErrInvalidID is returned when an identifier is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid id format")
	// ErrMissingEmail is returned when an email filter is required but empty.
	ErrMissingEmail = errors.New("email is required")
	// ErrNotFound is returned when a single-record lookup matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateFavorite is returned when the (reviewId, userEmail) pair already exists.
	ErrDuplicateFavorite = errors.New("already in favorites")
)
