package service

import "errors"

// Sentinel errors returned by the service layer. Callers match them
// with errors.Is; the wrapped message carries the specifics.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidArgument   = errors.New("invalid argument")
)
