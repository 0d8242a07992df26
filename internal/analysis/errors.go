// Package analysis provides model-backed analyzers for resumes and job
// descriptions.
package analysis

import "fmt"

// Error wraps a failed analyzer call.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
