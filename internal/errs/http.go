package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "amt", "error": "is required" }
type FieldError struct {
	// Field is the JSON key the error relates to (e.g. "comp_code").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type every API failure is expressed as.
//
// It implements the `error` interface via Error() and is serialized directly
// as the response body. Fields:
//   - Code: machine-friendly code (e.g. "NOT_FOUND", "COMPANY_ALREADY_EXISTS"),
//     used in logs only.
//   - Message: human-friendly message, sent as "error".
//   - Status: HTTP status code.
//   - Errors: per-field validation errors (omitted when empty).
type HTTPError struct {
	Code    string `json:"-"`
	Message string `json:"error"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
