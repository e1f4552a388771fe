package form

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/slimkit/pkg/validator"
)

// Field describes one expected input field.
type Field struct {
	Name     string
	Kind     Kind
	Array    bool
	Required bool

	// Default is returned by Form.Get when no value was coerced.
	Default    any
	HasDefault bool

	// Pattern is used by KindRegex.
	Pattern *regexp.Regexp
	// Format is a date() style format used by KindDate.
	Format string
	// Choices restricts KindRaw and KindString values to a fixed set.
	Choices []string
	// Transform is the coercion stage of KindFunc.
	Transform func(raw string) (any, bool)

	validators []func(v any) bool
	layout     string
}

// Option configures a Field at registration time.
type Option func(*Field)

// WithDefault sets the value returned by Form.Get when the field has no value.
func WithDefault(v any) Option {
	return func(f *Field) {
		f.Default = v
		f.HasDefault = true
	}
}

// WithRequired marks the field as required.
func WithRequired() Option {
	return func(f *Field) { f.Required = true }
}

// WithArray declares the field as a sequence of values.
func WithArray() Option {
	return func(f *Field) { f.Array = true }
}

// WithValidator adds a predicate over the coerced value. Several validators
// may be added; all of them must accept the value. Nil functions are ignored.
func WithValidator(fn func(v any) bool) Option {
	return func(f *Field) {
		if fn != nil {
			f.validators = append(f.validators, fn)
		}
	}
}

// WithPattern sets the regular expression used by KindRegex.
// It panics if the pattern does not compile.
func WithPattern(pattern string) Option {
	re := regexp.MustCompile(pattern)
	return func(f *Field) { f.Pattern = re }
}

// WithFormat sets the date() style format used by KindDate.
func WithFormat(format string) Option {
	return func(f *Field) { f.Format = format }
}

// WithChoices restricts the field to the given values.
func WithChoices(choices ...string) Option {
	return func(f *Field) { f.Choices = append(f.Choices[:0:0], choices...) }
}

// WithTransform sets the coercion callback used by KindFunc. The callback
// returns false when the raw value is invalid.
func WithTransform(fn func(raw string) (any, bool)) Option {
	return func(f *Field) { f.Transform = fn }
}

// prepare checks the field configuration and derives internal state.
// Misconfiguration is a programming error and panics.
func (f *Field) prepare() {
	fail := func(format string, args ...any) {
		panic(fmt.Errorf("%w: field %q: %s", ErrMisconfigured, f.Name, fmt.Sprintf(format, args...)))
	}

	if f.Name == "" {
		panic(fmt.Errorf("%w: field name cannot be empty", ErrMisconfigured))
	}
	if !f.Kind.valid() {
		fail("unknown kind %d", f.Kind)
	}
	if f.Transform != nil && f.Kind != KindFunc {
		fail("transform requires kind %s, got %s", KindFunc, f.Kind)
	}

	switch f.Kind {
	case KindFunc:
		if f.Transform == nil {
			fail("kind %s requires a transform", f.Kind)
		}
	case KindRegex:
		if f.Pattern == nil {
			fail("kind %s requires a pattern", f.Kind)
		}
	case KindDate:
		if f.Format == "" {
			fail("kind %s requires a format", f.Kind)
		}
		layout, err := layoutFor(f.Format)
		if err != nil {
			fail("%v", err)
		}
		f.layout = layout
	}

	if len(f.Choices) > 0 {
		if f.Kind != KindRaw && f.Kind != KindString {
			fail("choices require kind %s or %s, got %s", KindRaw, KindString, f.Kind)
		}
		f.validators = append(f.validators, f.oneOf)
	}
}

// accepts runs the custom validators against v.
func (f *Field) accepts(v any) bool {
	for _, fn := range f.validators {
		if !fn(v) {
			return false
		}
	}
	return true
}

// oneOf checks membership in Choices. Empty values are accepted when the
// field is optional.
func (f *Field) oneOf(v any) bool {
	switch val := v.(type) {
	case nil:
		return !f.Required
	case string:
		if val == "" && !f.Required {
			return true
		}
		return validator.InListString(f.Name, val, f.Choices).Check()
	case Indexed:
		if len(val) == 0 {
			return !f.Required
		}
		for _, el := range val {
			s, ok := el.(string)
			if !ok || !validator.InListString(f.Name, s, f.Choices).Check() {
				return false
			}
		}
		return true
	}
	return false
}
