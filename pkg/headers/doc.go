// Package headers holds response header and reverse proxy middleware.
//
// A Set maps header names to fixed or per-request values:
//
//	h := headers.Defaults().
//		Add("Strict-Transport-Security", "max-age=31536000").
//		AddFunc("X-Request-ID", func(r *http.Request) (string, bool) {
//			id := requestid.FromContext(r.Context())
//			return id, id != ""
//		})
//	router.Use(h.Middleware)
//
// Forwarded applies X-Forwarded-Proto and X-Forwarded-Port to the request URL
// and records the client address, so absolute links built from the request
// use the scheme the browser saw.
package headers
