package document

import (
	"openclear/mx-message/internal/parsererror"
	"openclear/mx-message/internal/validation"
)

// Status summarises the outcome of a validation run.
type Status string

const (
	// StatusValid means no errors were collected.
	StatusValid Status = "valid"
	// StatusInvalid means ordinary validation errors were collected.
	StatusInvalid Status = "invalid"
	// StatusCritical means at least one critical error was collected.
	StatusCritical Status = "critical"
)

// ValidationReport is the result of validating one document.
type ValidationReport struct {
	MessageType string
	Status      Status
	Errors      []parsererror.ValidationError
}

// ValidateDocument runs validation over a document with the given
// configuration and summarises the outcome.
func ValidateDocument(doc *Document, cfg *validation.ParserConfig) *ValidationReport {
	coll := validation.NewErrorCollector()
	doc.Validate("", cfg, coll)
	return newReport(doc.MessageType(), coll)
}

// ValidateAppHeader runs validation over a Business Application Header.
func ValidateAppHeader(hdr *AppHeader, cfg *validation.ParserConfig) *ValidationReport {
	coll := validation.NewErrorCollector()
	hdr.Validate("", cfg, coll)
	return newReport("head.001", coll)
}

func newReport(messageType string, coll *validation.ErrorCollector) *ValidationReport {
	status := StatusValid
	switch {
	case coll.HasCriticalErrors():
		status = StatusCritical
	case coll.HasErrors():
		status = StatusInvalid
	}
	return &ValidationReport{
		MessageType: messageType,
		Status:      status,
		Errors:      coll.Errors(),
	}
}
