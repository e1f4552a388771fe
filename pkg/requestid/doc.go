// Package requestid attaches a correlation ID to every HTTP request.
//
// The middleware reuses the client's X-Request-ID header when it holds 1 to
// 128 letters, digits, dashes or underscores, and generates a UUIDv4
// otherwise. The ID is stored in the request context and echoed in the
// response. LoggerExtractor plugs it into package logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
