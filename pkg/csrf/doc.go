// Package csrf guards state-changing requests with a per-client token.
//
// Middleware loads the client's token from a Store, creating one on first
// visit. POST, PUT, PATCH and DELETE requests must send it back in the
// csrf_token form field or the X-CSRF-Token header, otherwise they are
// answered with 400 Bad Request and logged. Handlers render the token with
// Token or TemplateData.
//
//	jar, _ := cookie.New(secrets)
//	r.Use(csrf.Middleware(csrf.NewCookieStore(jar, "_csrf"), csrf.WithLogger(log)))
//
//	// in a template: <input type="hidden" name="csrf_token" value="{{ .csrf_token }}">
package csrf
