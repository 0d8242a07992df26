// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/beetune/internal/analysis"
	"github.com/jonathan/beetune/internal/formatting"
	"github.com/jonathan/beetune/internal/latex"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContactInfo outputs the contact details extracted from the resume.
func (p *Printer) PrintContactInfo(contact formatting.ContactInfo) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", valueOrDash(contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", valueOrDash(contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:     %s\n", valueOrDash(contact.Phone)))
	sb.WriteString(fmt.Sprintf("LinkedIn:  %s\n", valueOrDash(contact.LinkedIn)))
	sb.WriteString(fmt.Sprintf("GitHub:    %s\n", valueOrDash(contact.GitHub)))
	sb.WriteString(fmt.Sprintf("Location:  %s", valueOrDash(contact.Location)))

	p.printBox("EXTRACTED CONTACT INFO", sb.String())
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PrintSections outputs the section kinds found in the resume with their
// sizes, in the order the assembler would emit them.
func (p *Printer) PrintSections(sections formatting.SectionMap) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d sections:\n\n", len(sections)))

	printed := make(map[formatting.Kind]bool, len(sections))
	order := append([]formatting.Kind{formatting.KindHeader}, formatting.SectionOrder...)
	for _, kind := range order {
		if body, ok := sections[kind]; ok {
			sb.WriteString(sectionLine(kind, body))
			printed[kind] = true
		}
	}
	for kind, body := range sections {
		if !printed[kind] {
			sb.WriteString(sectionLine(kind, body))
		}
	}

	p.printBox("PARSED SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func sectionLine(kind formatting.Kind, body string) string {
	lines := strings.Count(body, "\n") + 1
	return fmt.Sprintf("• %-15s %d lines, %d chars\n", kind, lines, len(body))
}

// PrintJobAnalysis outputs the keywords and benefits extracted from a job
// description.
func (p *Printer) PrintJobAnalysis(result *analysis.JobAnalysis) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if result.Keywords != "" {
		sb.WriteString("Keywords:\n")
		sb.WriteString(indentBlock(result.Keywords))
		sb.WriteString("\n")
	}
	if result.Benefits != "" {
		sb.WriteString("Benefits:\n")
		sb.WriteString(indentBlock(result.Benefits))
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

func indentBlock(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		sb.WriteString("  " + strings.TrimSpace(line) + "\n")
	}
	return sb.String()
}

// PrintValidation outputs the structural validation verdict for a LaTeX
// document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(result latex.ValidationResult) {
	if result.IsValid && len(result.Warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DOCUMENT STRUCTURE VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	if len(result.MissingElements) > 0 {
		sb.WriteString(fmt.Sprintf("Missing elements (%d):\n", len(result.MissingElements)))
		for _, missing := range result.MissingElements {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", truncate(missing, 52)))
		}
	}
	if len(result.Warnings) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(result.Warnings)))
		count := min(len(result.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("• %s\n", truncate(result.Warnings[i], 52)))
		}
		if len(result.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Warnings)-maxItemsToShow))
		}
	}

	p.printBox("DOCUMENT VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompilation outputs a summary of a pdflatex run.
func (p *Printer) PrintCompilation(result latex.CompilationResult) {
	var sb strings.Builder

	if result.Success {
		sb.WriteString("Status:  success\n")
		sb.WriteString(fmt.Sprintf("Pages:   %d\n", result.Pages))
	} else {
		sb.WriteString("Status:  failed\n")
		sb.WriteString(fmt.Sprintf("Error:   %s\n", truncate(result.ErrorMessage, 45)))
	}
	sb.WriteString(fmt.Sprintf("Log:     %d bytes", len(result.LogOutput)))

	p.printBox("PDF COMPILATION", sb.String())
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit-3] + "..."
	}
	return s
}
