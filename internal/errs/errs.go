// Package errs defines the error types returned by handlers and services.
//
// Every error that reaches the HTTP boundary is an *HTTPError (or is turned
// into one by the global error handler), so clients always receive the same
// JSON shape:
//
//	{ "error": "Cannot find company", "status": 404 }
package errs
