package domain

import "errors"

var (
	ErrUnknownSheet       = errors.New("unknown sheet")
	ErrUnknownField       = errors.New("unknown field")
	ErrRowNotFound        = errors.New("row not found")
	ErrRowIndexOutOfRange = errors.New("row index out of range")
	ErrValidationFailed   = errors.New("validation failed")
)

// ValidationError carries the per-field messages of a rejected submit.
type ValidationError struct {
	Errors ValidationErrors
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
