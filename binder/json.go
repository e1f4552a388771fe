package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrymomot/slimkit/pkg/form"
)

// JSON decodes an application/json body into v, rejecting unknown fields.
// If v is an Expecter the top-level object is validated like a submitted
// form instead, so JSON clients get the same rules as browsers. Numbers keep
// their literal text and null members count as missing.
func JSON(opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType != "application/json" {
			return ErrBinderNotApplicable
		}

		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return errors.Join(ErrInvalidJSON, err)
		}
		if len(bytes.TrimSpace(raw)) == 0 {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}

		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, ok := v.(Expecter); !ok {
			dec.DisallowUnknownFields()
			if err := dec.Decode(v); err != nil {
				return errors.Join(ErrInvalidJSON, err)
			}
			return nil
		}

		var obj map[string]any
		dec.UseNumber()
		if err := dec.Decode(&obj); err != nil {
			return errors.Join(ErrInvalidJSON, err)
		}
		in := make(form.Input, len(obj))
		for k, val := range obj {
			if val != nil {
				in[k] = val
			}
		}
		return o.validate(r, v, in)
	}
}
