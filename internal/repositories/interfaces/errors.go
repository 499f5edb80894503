package interfaces

import "errors"

var (
	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a unique key is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
)
