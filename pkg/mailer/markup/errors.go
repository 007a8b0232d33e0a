package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDocument indicates the document failed validation and no HTML was produced.
var ErrInvalidDocument = errors.New("invalid email document")

// Severity classifies a validation finding.
type Severity string

const (
	// SeverityWarning findings are recovered from: the offending block is fixed up or skipped.
	SeverityWarning Severity = "warning"
	// SeverityError findings are structural; the document cannot be rendered under soft validation.
	SeverityError Severity = "error"
)

// ValidationError describes one problem found while converting a document.
type ValidationError struct {
	Path     string   `json:"path"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Severity, e.Path, e.Message)
}

// ConvertError is returned when validation rejects a document.
// It matches ErrInvalidDocument with errors.Is.
type ConvertError struct {
	Errors []ValidationError
}

func (e *ConvertError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

func (e *ConvertError) Is(target error) bool {
	return target == ErrInvalidDocument
}
