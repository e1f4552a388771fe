package binder

import (
	"fmt"
	"maps"
	"net/http"

	"github.com/dmitrymomot/slimkit/pkg/form"
)

// Expecter is implemented by request types bound through a validation form.
// Expect registers the fields on a fresh form for every request; Load runs
// after successful validation and copies the coerced values into the
// receiver.
type Expecter interface {
	Expect(f *form.Form)
	Load(f *form.Form)
}

type options struct {
	formOpts  []form.FormOption
	pathParam func(r *http.Request, name string) string
	withQuery bool
}

type Option func(*options)

// WithFormOptions passes opts to every form the binder builds.
func WithFormOptions(opts ...form.FormOption) Option {
	return func(o *options) { o.formOpts = append(o.formOpts, opts...) }
}

// WithPathParams fills registered fields from route parameters, e.g.
// chi.URLParam. Path values override query and body values.
func WithPathParams(param func(r *http.Request, name string) string) Option {
	return func(o *options) { o.pathParam = param }
}

// WithQuery adds query string values under the body values for Form.
func WithQuery() Option {
	return func(o *options) { o.withQuery = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validate builds a form for v, validates in and loads the result.
func (o options) validate(r *http.Request, v any, in form.Input) error {
	e, ok := v.(Expecter)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotExpecter, v)
	}

	f := form.New(o.formOpts...)
	e.Expect(f)

	if o.pathParam != nil {
		merged := make(form.Input, len(in))
		maps.Copy(merged, in)
		for _, field := range f.Fields() {
			if p := o.pathParam(r, field.Name); p != "" {
				merged[field.Name] = p
			}
		}
		in = merged
	}

	if !f.Validate(in) {
		return f.Err()
	}
	e.Load(f)
	return nil
}
