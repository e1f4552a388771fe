package validator

import "errors"

var (
	// ErrValidationFailed is wrapped by ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")
)
