package form

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/dmitrymomot/slimkit/pkg/logger"
)

// Form holds a set of field expectations and the results of the latest
// validation run.
type Form struct {
	logger *slog.Logger
	hook   func(*Form)

	fields []*Field
	index  map[string]int

	values map[string]any
	errors []string
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithLogger sets the logger used to report validation failures at debug level.
func WithLogger(l *slog.Logger) FormOption {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithHook registers a function that runs at the end of every Validate call.
// It may inspect values and record additional failures with AddError.
func WithHook(fn func(*Form)) FormOption {
	return func(f *Form) { f.hook = fn }
}

// Hook is WithHook for a Form that already exists, e.g. inside a binder
// Expect method.
func (f *Form) Hook(fn func(*Form)) *Form {
	f.hook = fn
	return f
}

// New creates an empty Form.
func New(opts ...FormOption) *Form {
	f := &Form{
		logger: logger.Discard(),
		index:  make(map[string]int),
		values: make(map[string]any),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Expect registers an optional field of the given kind. Registering a name a
// second time replaces the earlier expectation and keeps its position.
// It panics if the field is misconfigured.
func (f *Form) Expect(name string, kind Kind, opts ...Option) *Form {
	field := &Field{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(field)
	}
	field.prepare()

	if i, ok := f.index[name]; ok {
		f.fields[i] = field
		return f
	}
	f.index[name] = len(f.fields)
	f.fields = append(f.fields, field)
	return f
}

// Require registers a required field of the given kind.
func (f *Form) Require(name string, kind Kind, opts ...Option) *Form {
	return f.Expect(name, kind, required(opts)...)
}

// Fields returns the registered fields in registration order.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	for i, field := range f.fields {
		out[i] = *field
	}
	return out
}

// Validate coerces and checks in against every registered field and reports
// whether all of them are valid. Results of previous runs are discarded.
func (f *Form) Validate(in Input) bool {
	values := make(map[string]any, len(f.fields))
	var invalid []string

	for _, field := range f.fields {
		value, failed := f.process(field, in[field.Name])

		switch {
		case field.Required && value == nil:
			invalid = append(invalid, field.Name)
		case field.Required && len(failed) > 0:
			invalid = append(invalid, failed...)
		case field.Required && isEmptyIndexed(value):
			invalid = append(invalid, field.Name)
		case !field.accepts(value):
			invalid = append(invalid, field.Name)
			value = nil
		}
		values[field.Name] = value
	}

	f.values = values
	f.errors = invalid

	if f.hook != nil {
		f.hook(f)
	}

	if len(f.errors) > 0 {
		f.logger.Debug("form validation failed",
			logger.Component("form"),
			slog.Any("invalid", f.errors),
		)
	}
	return len(f.errors) == 0
}

// process coerces the raw value of a single field. For array fields it also
// returns the identifiers of the elements that failed coercion.
func (f *Form) process(field *Field, raw any) (any, []string) {
	if raw == nil {
		return nil, nil
	}

	if !field.Array {
		s, ok := scalar(raw)
		if !ok {
			return nil, nil
		}
		v, ok := field.coerce(s)
		if !ok {
			return nil, nil
		}
		return v, nil
	}

	seq, ok := sequence(raw)
	if !ok {
		return nil, nil
	}
	out := make(Indexed, len(seq))
	var failed []string
	for _, i := range seq.Keys() {
		s, ok := scalar(seq[i])
		if ok {
			var v any
			if v, ok = field.coerce(s); ok {
				out[i] = v
				continue
			}
		}
		failed = append(failed, fmt.Sprintf("%s[%d]", field.Name, i))
	}
	return out, failed
}

func isEmptyIndexed(v any) bool {
	idx, ok := v.(Indexed)
	return ok && len(idx) == 0
}

// Get returns the coerced value of name. When there is none it falls back to
// the registered default, and to nil when no default exists.
func (f *Form) Get(name string) any {
	if v, ok := f.values[name]; ok && v != nil {
		return v
	}
	if i, ok := f.index[name]; ok && f.fields[i].HasDefault {
		return f.fields[i].Default
	}
	return nil
}

// Values returns a copy of the coerced values of the latest run.
// Defaults are not included.
func (f *Form) Values() map[string]any {
	return maps.Clone(f.values)
}

// Errors returns the invalid identifiers of the latest run.
func (f *Form) Errors() []string {
	return slices.Clone(f.errors)
}

// HasErrors reports whether the latest run recorded any failure.
func (f *Form) HasErrors() bool {
	return len(f.errors) > 0
}

// AddError records id as invalid. Duplicates are ignored.
func (f *Form) AddError(id string) {
	if id == "" || slices.Contains(f.errors, id) {
		return
	}
	f.errors = append(f.errors, id)
}

// Err returns the failures of the latest run as a *ValidationError, or nil.
func (f *Form) Err() error {
	if len(f.errors) == 0 {
		return nil
	}
	return &ValidationError{Fields: f.Errors()}
}

// String returns the value of name as a string, or "" if it is not one.
func (f *Form) String(name string) string {
	v, _ := Value[string](f, name)
	return v
}

// Int returns the value of name as an int, or 0 if it is not one.
func (f *Form) Int(name string) int {
	v, _ := Value[int](f, name)
	return v
}

// Float returns the value of name as a float64, or 0 if it is not one.
func (f *Form) Float(name string) float64 {
	v, _ := Value[float64](f, name)
	return v
}

// Bool returns the value of name as a bool, or false if it is not one.
func (f *Form) Bool(name string) bool {
	v, _ := Value[bool](f, name)
	return v
}

// Time returns the value of a date field, or the zero time.
func (f *Form) Time(name string) time.Time {
	v, _ := Value[time.Time](f, name)
	return v
}

// Strings returns the elements of an array field ordered by index.
func (f *Form) Strings(name string) []string {
	return Slice[string](f, name)
}

// Value returns Get(name) asserted to T.
func Value[T any](f *Form, name string) (T, bool) {
	v, ok := f.Get(name).(T)
	return v, ok
}

// Slice returns the elements of an array field that are of type T, ordered
// by their original index.
func Slice[T any](f *Form, name string) []T {
	idx, ok := f.Get(name).(Indexed)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(idx))
	for _, i := range idx.Keys() {
		if v, ok := idx[i].(T); ok {
			out = append(out, v)
		}
	}
	return out
}
