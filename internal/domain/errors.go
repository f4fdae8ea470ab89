package domain

import "fmt"

// Error codes forwarded to the HTTP boundary.
const (
	CodeConfigError        = "config_error"
	CodeAutocompleteFailed = "provider_autocomplete_failed"
)

// AppError is a classified failure with a stable code for the boundary
// layer to translate. The underlying cause is kept for logs and errors.Is.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewConfigError marks a failure to construct the provider client.
func NewConfigError(err error) *AppError {
	return &AppError{
		Code:    CodeConfigError,
		Message: "failed to initialize places client",
		Err:     err,
	}
}

// NewAutocompleteError marks a fatal upstream autocomplete failure.
func NewAutocompleteError(err error) *AppError {
	return &AppError{
		Code:    CodeAutocompleteFailed,
		Message: "failed to fetch location suggestions",
		Err:     err,
	}
}
