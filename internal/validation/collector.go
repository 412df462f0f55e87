package validation

import "openclear/mx-message/internal/parsererror"

// ErrorCollector accumulates validation errors across a whole message tree.
// It is append-only: errors are never dropped or deduplicated, so validating
// the same tree twice yields the same errors twice.
type ErrorCollector struct {
	errors            []parsererror.ValidationError
	hasCriticalErrors bool
}

// NewErrorCollector returns an empty collector.
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// AddError appends a validation error.
func (c *ErrorCollector) AddError(err parsererror.ValidationError) {
	c.errors = append(c.errors, err)
}

// AddCriticalError appends a validation error and marks the collector as
// holding a critical failure.
func (c *ErrorCollector) AddCriticalError(err parsererror.ValidationError) {
	c.errors = append(c.errors, err)
	c.hasCriticalErrors = true
}

// HasErrors reports whether any error has been collected.
func (c *ErrorCollector) HasErrors() bool {
	return len(c.errors) > 0
}

// HasCriticalErrors reports whether a critical error has been collected.
func (c *ErrorCollector) HasCriticalErrors() bool {
	return c.hasCriticalErrors
}

// Errors returns the collected errors in the order they were added.
func (c *ErrorCollector) Errors() []parsererror.ValidationError {
	return c.errors
}

// Len returns the number of collected errors.
func (c *ErrorCollector) Len() int {
	return len(c.errors)
}
