package latex

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationResult is the outcome of a structural validation pass.
// MissingElements are fatal; Warnings never affect IsValid.
type ValidationResult struct {
	IsValid         bool     `json:"is_valid"`
	MissingElements []string `json:"missing_elements"`
	Warnings        []string `json:"warnings"`
}

// requiredElement pairs a marker every compilable document needs with its
// human-readable description.
type requiredElement struct {
	marker      string
	description string
}

var requiredElements = []requiredElement{
	{`\documentclass`, "Document class declaration"},
	{`\begin{document}`, "Document begin"},
	{`\end{document}`, "Document end"},
}

var (
	// unescapedPercentRe finds a % that is not preceded by a backslash and is
	// followed (possibly across lines) by more markup.
	unescapedPercentRe = regexp.MustCompile(`(?s)[^\\]%.*\\`)
	// beginEnvRe and endEnvRe capture environment names for pairing checks.
	beginEnvRe = regexp.MustCompile(`\\begin\{(\w+)\}`)
	endEnvRe   = regexp.MustCompile(`\\end\{(\w+)\}`)
	// command patterns whose packages are commonly forgotten
	geometryCmdRe = regexp.MustCompile(`\\geometry\{`)
	colorCmdRe    = regexp.MustCompile(`\\color\{|\\definecolor`)
	hyperlinkRe   = regexp.MustCompile(`\\href\{|\\url\{`)
	itemizeOptsRe = regexp.MustCompile(`\\begin\{itemize\}.*\[.*\]`)
)

// ValidateStructure inspects LaTeX source for required and problematic
// patterns. Missing required elements make the document invalid; everything
// else surfaces as a warning.
func ValidateStructure(content string) ValidationResult {
	var missing []string
	var warnings []string

	for _, req := range requiredElements {
		if !strings.Contains(content, req.marker) {
			missing = append(missing, fmt.Sprintf("Missing %s (%s)", req.description, req.marker))
		}
	}

	if strings.Count(content, `\begin{document}`) > 1 {
		warnings = append(warnings, "Multiple document beginnings detected")
	}
	if strings.Count(content, `\end{document}`) > 1 {
		warnings = append(warnings, "Multiple document endings detected")
	}
	if unescapedPercentRe.MatchString(content) {
		warnings = append(warnings, "Potential unescaped percent sign in content")
	}
	if hasUnmatchedEnvironments(content) {
		warnings = append(warnings, "Unmatched begin/end environment pairs")
	}

	docClassPos := strings.Index(content, `\documentclass`)
	beginDocPos := strings.Index(content, `\begin{document}`)
	if docClassPos != -1 && beginDocPos != -1 && docClassPos > beginDocPos {
		warnings = append(warnings, `Document class should appear before \begin{document}`)
	}

	packageChecks := []struct {
		pkg        string
		command    *regexp.Regexp
		suggestion string
	}{
		{`\usepackage{geometry}`, geometryCmdRe, `geometry package needed for \geometry command`},
		{`\usepackage{xcolor}`, colorCmdRe, "xcolor package needed for color commands"},
		{`\usepackage{hyperref}`, hyperlinkRe, "hyperref package needed for links"},
		{`\usepackage{enumitem}`, itemizeOptsRe, "enumitem package recommended for itemize options"},
	}
	for _, check := range packageChecks {
		if check.command.MatchString(content) && !strings.Contains(content, check.pkg) {
			warnings = append(warnings, check.suggestion)
		}
	}

	return ValidationResult{
		IsValid:         len(missing) == 0,
		MissingElements: missing,
		Warnings:        warnings,
	}
}

// hasUnmatchedEnvironments reports whether any environment is opened more
// times than it is closed.
func hasUnmatchedEnvironments(content string) bool {
	opens := map[string]int{}
	for _, m := range beginEnvRe.FindAllStringSubmatch(content, -1) {
		opens[m[1]]++
	}
	for _, m := range endEnvRe.FindAllStringSubmatch(content, -1) {
		opens[m[1]]--
	}
	for _, n := range opens {
		if n > 0 {
			return true
		}
	}
	return false
}
