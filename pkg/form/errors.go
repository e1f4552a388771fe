package form

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrValidationFailed is wrapped by every ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMisconfigured is used for panics raised while registering fields.
	ErrMisconfigured = errors.New("form field misconfigured")

	// ErrInvalidInput is returned when a request body cannot be decoded.
	ErrInvalidInput = errors.New("invalid form input")

	// ErrInvalidQuery is returned when a query string contains malformed pairs.
	ErrInvalidQuery = errors.New("invalid query string")
)

// ValidationError reports the identifiers that failed the latest validation
// run, in the order they were recorded.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Has reports whether id was recorded as invalid.
func (e *ValidationError) Has(id string) bool {
	if e == nil {
		return false
	}
	return slices.Contains(e.Fields, id)
}

// Details groups the invalid identifiers by field name, turning name[3]
// into an entry for name. The value lists the raw identifiers.
func (e *ValidationError) Details() map[string][]string {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e.Fields))
	for _, id := range e.Fields {
		name := id
		if i := strings.IndexByte(id, '['); i > 0 && strings.HasSuffix(id, "]") {
			name = id[:i]
		}
		out[name] = append(out[name], id)
	}
	return out
}
