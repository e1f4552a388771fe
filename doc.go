// Package slimkit is a toolkit for server-rendered Go web applications built
// around declarative form validation.
//
// The pieces live in their own packages:
//
//   - pkg/form declares expected fields, coerces raw request values and
//     records which fields failed.
//   - binder fills request structs from forms, query strings and JSON through
//     pkg/form.
//   - handler adapts typed handlers to net/http and renders validation
//     failures.
//   - pkg/csrf, pkg/headers, pkg/cookie and pkg/requestid are net/http
//     middlewares.
//   - pkg/password hashes and checks passwords.
//   - pkg/config, pkg/logger and pkg/httpserver cover configuration, logging
//     and serving.
//
// See the example directory for an application wiring them together.
package slimkit
