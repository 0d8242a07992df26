// Package extraction pulls plain text out of uploaded resume documents.
// Supported inputs are PDF, DOCX, HTML, LaTeX and plain text files.
package extraction

import "fmt"

// UnsupportedTypeError indicates a file extension the pipeline cannot process.
type UnsupportedTypeError struct {
	Extension string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Extension)
}

// ExtractionError wraps a failure while reading a supported document.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// SecurityError indicates an upload that failed validation before extraction.
type SecurityError struct {
	Message string
	Detail  string
}

func (e *SecurityError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}
