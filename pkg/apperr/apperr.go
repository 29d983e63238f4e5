package apperr

import "errors"

// Failure kinds surfaced by the workflow services. Handlers pick the HTTP
// status with errors.Is; anything not wrapping one of these is treated as a
// transient persistence failure, never a business-rule violation.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
)
