package binder

import (
	"net/http"

	"github.com/dmitrymomot/slimkit/pkg/form"
)

// Query binds the URL query string. It applies to every request, so chain it
// last when combined with body binders.
func Query(opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		return o.validate(r, v, form.InputFromValues(r.URL.Query()))
	}
}
