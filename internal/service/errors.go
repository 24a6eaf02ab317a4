package service

import "errors"

// Error kinds surfaced by the services. Handlers map these onto HTTP
// statuses; anything else is treated as a persistence failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)
