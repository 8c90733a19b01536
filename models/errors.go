package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a mutation targets an id that is not in
// the live collection.
var ErrNotFound = errors.New("record not found")

// ErrInvalidStatus is returned when a status transition names a value
// outside {pending, approved, rejected}.
var ErrInvalidStatus = errors.New("invalid room status")

// ValidationError reports the required draft fields that were absent or
// blank. The check is presence-only; no type or range validation
// happens here.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
