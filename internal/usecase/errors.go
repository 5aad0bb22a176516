package usecase

import "errors"

// Failure taxonomy surfaced to callers. Handlers map these to HTTP status
// codes with errors.Is; services wrap them with context via fmt.Errorf %w.
var (
	// ErrNotFound - a referenced entity id does not exist
	ErrNotFound = errors.New("not found")

	// ErrSeatUnavailable - a requested seat is already booked for the
	// showing, or the showing has no capacity left
	ErrSeatUnavailable = errors.New("seat unavailable")

	// ErrShowingClosed - booking attempted after the showing's start time
	ErrShowingClosed = errors.New("showing closed for booking")

	// ErrConflict - a write collides with existing state, e.g. an
	// overlapping showing at the same location
	ErrConflict = errors.New("conflict")

	// ErrValidation - missing or malformed required field
	ErrValidation = errors.New("validation failed")
)
