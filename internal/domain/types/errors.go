package types

import "errors"

var (
	// ErrStorage wraps every failure of the session storage backend.
	ErrStorage = errors.New("session storage")

	// ErrUnknownField is returned when a field name is neither hours nor minutes.
	ErrUnknownField = errors.New("unknown field")
)
