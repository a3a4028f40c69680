package errors

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidStatus = errors.New("invalid status")
	// ErrAlreadyExists is reserved. IDs are always freshly allocated, so no
	// current entry point can collide; the sentinel stays in the taxonomy.
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
)
