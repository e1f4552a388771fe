// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value filled by binders
// from the binder package, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	type SignupRequest struct{ Email string }
//
//	func (s *SignupRequest) Expect(f *form.Form) { f.RequireEmail("email") }
//	func (s *SignupRequest) Load(f *form.Form)   { s.Email = f.String("email") }
//
//	func signup(ctx handler.Context, req SignupRequest) handler.Response {
//		return handler.Redirect("/welcome")
//	}
//
//	r.Post("/signup", handler.Wrap(signup,
//		handler.WithBinders[handler.Context, SignupRequest](binder.Form(), binder.JSON()),
//		handler.WithErrorHandler[handler.Context, SignupRequest](handler.NewErrorHandler[handler.Context](log)),
//	))
//
// Binding failures go to the error handler. Classify maps them to status
// codes: form validation failures become 422 and JSON error bodies list the
// failed field identifiers under error.details.
//
// Methods routes one path to per-method handlers, and Paginate computes page
// link windows for list views.
package handler
