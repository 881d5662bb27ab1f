package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested id does not exist, or a
	// denormalized read drops its row because a joined reference dangles.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for missing or malformed required fields,
	// unresolvable references at write time, and disallowed status moves.
	ErrValidation = errors.New("validation failed")
)

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
