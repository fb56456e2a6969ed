// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP boundary is shaped into an
// HTTPError so clients always receive the same JSON structure:
// a machine-readable code, a human-readable message, the HTTP status,
// and optional field-level errors.
package errs
