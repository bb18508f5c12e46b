// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package so that every 4xx/5xx
// response carries a machine-readable reason token in the "detail" field and
// internal details (stack traces, SQL errors, etc.) never leak.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors from request binding.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation_error", Fields: fields}
}
