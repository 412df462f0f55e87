// Package parsererror defines the typed errors produced while parsing and
// validating MX messages.
package parsererror

import "fmt"

// Validation error codes.
const (
	CodeMinLength = 1001
	CodeMaxLength = 1002
	CodeRequired  = 1003
	CodePattern   = 1005
	CodeCritical  = 9999
)

// ValidationError describes a single schema violation found at a specific
// location in a message.
type ValidationError struct {
	Code    int
	Message string
	Field   string
	Path    string
}

// NewValidationError creates a ValidationError with the given code and message.
func NewValidationError(code int, message string) ValidationError {
	return ValidationError{
		Code:    code,
		Message: message,
	}
}

// WithField returns a copy of the error annotated with the field name.
func (e ValidationError) WithField(field string) ValidationError {
	e.Field = field
	return e
}

// WithPath returns a copy of the error annotated with the element path.
func (e ValidationError) WithPath(path string) ValidationError {
	e.Path = path
	return e
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("validation error %d at %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("validation error %d: %s", e.Code, e.Message)
}

// ParseError indicates that a message could not be decoded at all, as
// opposed to decoding fine but failing validation.
type ParseError struct {
	File string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("failed to parse message: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownMessageTypeError indicates that the root element of a document does
// not correspond to any supported message definition.
type UnknownMessageTypeError struct {
	Element string
}

// Error implements the error interface.
func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("unknown message type for element %q", e.Element)
}
