// Package binder turns HTTP requests into validated request values.
//
// Request types implement Expecter: Expect declares the fields on a fresh
// form.Form for each request and Load copies the coerced values once the
// form validates. Form, Query and JSON each read one source and return
// ErrBinderNotApplicable when the request does not carry it, so several
// binders can be chained with handler.WithBinders. Validation failures are
// returned as *form.ValidationError.
//
//	r.Post("/signup", handler.Wrap(signup,
//		handler.WithBinders[handler.Context, SignupRequest](
//			binder.Form(binder.WithPathParams(chi.URLParam)),
//			binder.JSON(),
//		),
//	))
package binder
