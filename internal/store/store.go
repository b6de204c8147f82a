package store

import "errors"

// ErrNotFound is returned when no account matches the lookup.
var ErrNotFound = errors.New("account not found")

// ErrConflict is returned when an insert violates a uniqueness constraint.
var ErrConflict = errors.New("account already exists")
