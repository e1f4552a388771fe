package binder

import (
	"mime"
	"net/http"

	"github.com/dmitrymomot/slimkit/pkg/form"
)

// Form binds url-encoded and multipart request bodies. Requests with another
// content type get ErrBinderNotApplicable; validation failures return the
// form's *form.ValidationError.
//
//	type SignupRequest struct {
//		Email string
//		Tags  []string
//	}
//
//	func (s *SignupRequest) Expect(f *form.Form) {
//		f.RequireEmail("email").ExpectStringArray("tags")
//	}
//
//	func (s *SignupRequest) Load(f *form.Form) {
//		s.Email, s.Tags = f.String("email"), f.Strings("tags")
//	}
func Form(opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType != "application/x-www-form-urlencoded" && mediaType != "multipart/form-data" {
			return ErrBinderNotApplicable
		}

		body, err := form.InputFromRequest(r)
		if err != nil {
			return err
		}

		in := body
		if o.withQuery {
			in = form.InputFromValues(r.URL.Query())
			for k, val := range body {
				in[k] = val
			}
		}
		return o.validate(r, v, in)
	}
}
