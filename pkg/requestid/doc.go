// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a UUIDv4, stores it in the request context and echoes it in the
// response. LoggerExtractor makes the id appear on every log record written
// with that context.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
