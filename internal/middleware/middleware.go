// Package middleware contains the HTTP middleware stack: CORS, request
// logging, panic recovery, request IDs, request-scoped loggers, read
// rate limiting, and the global error handler.
package middleware
