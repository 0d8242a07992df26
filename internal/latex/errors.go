// Package latex validates LaTeX document structure and drives pdflatex compilation.
package latex

import "fmt"

// InstallError reports a missing or broken pdflatex installation.
type InstallError struct {
	Message string
	Cause   error
}

func (e *InstallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("latex install error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("latex install error: %s", e.Message)
}

func (e *InstallError) Unwrap() error {
	return e.Cause
}
