package store

import (
	"errors"
	"fmt"
)

// Error taxonomy for store operations. Handlers map these onto HTTP
// statuses; callers branch with errors.Is.
var (
	// ErrValidation marks a missing or malformed required field,
	// detected before any external write.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a duplicate trip name.
	ErrConflict = errors.New("trip already exists")

	// ErrNotFound marks an unknown trip or sheet.
	ErrNotFound = errors.New("trip not found")

	// ErrExternal marks a spreadsheet API failure, surfaced unmodified
	// and never retried.
	ErrExternal = errors.New("spreadsheet service error")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflictErr(name string) error {
	return fmt.Errorf("%w: %s", ErrConflict, name)
}

func notFoundErr(name string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

func externalErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExternal, op, err)
}
