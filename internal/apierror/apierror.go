// Package apierror provides the error response envelopes for the API.
// Every 4xx/5xx body goes through this package so clients always see the
// same shape and internal details (DB errors, stack traces) never leak.
package apierror

// APIError is the canonical error envelope. The `detail` key matches what
// the existing frontend expects from the previous backend.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps per-field validation failures.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
