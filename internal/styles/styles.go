// Package styles holds the named LaTeX style presets used when formatting documents.
package styles

import "fmt"

// Style identifies a LaTeX formatting style preset.
type Style string

// Available style presets
const (
	// StyleModern is a colored, titlesec-based layout with hyperlinks
	StyleModern Style = "modern"
	// StyleClassic is a plain article layout with 1in margins
	StyleClassic Style = "classic"
	// StyleMinimal is a compact 10pt layout with rule-separated sections
	StyleMinimal Style = "minimal"
	// StyleAcademic is a serif layout suited to publication-heavy documents
	StyleAcademic Style = "academic"
)

// All returns every defined style in a stable order.
func All() []Style {
	return []Style{StyleModern, StyleClassic, StyleMinimal, StyleAcademic}
}

// Parse converts a style identifier string into a Style.
// Returns an error for unknown identifiers so callers can reject bad input early.
func Parse(s string) (Style, error) {
	switch Style(s) {
	case StyleModern, StyleClassic, StyleMinimal, StyleAcademic:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown style %q (valid: modern, classic, minimal, academic)", s)
	}
}

// Template defines the preamble directives for one style.
// Templates are defined at init and never mutated; Lookup hands out the
// shared instance, so callers must treat it as read-only.
type Template struct {
	DocumentClass string
	Packages      []string
	Geometry      string
	Colors        string
	SectionFormat string
}

var templates = map[Style]Template{
	StyleModern: {
		DocumentClass: `\documentclass[11pt,a4paper]{article}`,
		Packages: []string{
			`\usepackage[utf8]{inputenc}`,
			`\usepackage[T1]{fontenc}`,
			`\usepackage{geometry}`,
			`\usepackage{titlesec}`,
			`\usepackage{enumitem}`,
			`\usepackage{hyperref}`,
			`\usepackage{xcolor}`,
			`\usepackage{fontawesome5}`,
		},
		Geometry:      `\geometry{top=1in, bottom=1in, left=0.75in, right=0.75in}`,
		Colors:        `\definecolor{primarycolor}{RGB}{0, 102, 204}`,
		SectionFormat: `\titleformat{\section}{\large\bfseries\color{primarycolor}}{}{0em}{}[\titlerule]`,
	},
	StyleClassic: {
		DocumentClass: `\documentclass[11pt,a4paper]{article}`,
		Packages: []string{
			`\usepackage[utf8]{inputenc}`,
			`\usepackage[T1]{fontenc}`,
			`\usepackage{geometry}`,
			`\usepackage{enumitem}`,
		},
		Geometry: `\geometry{top=1in, bottom=1in, left=1in, right=1in}`,
	},
	StyleMinimal: {
		DocumentClass: `\documentclass[10pt,a4paper]{article}`,
		Packages: []string{
			`\usepackage[utf8]{inputenc}`,
			`\usepackage{geometry}`,
			`\usepackage{enumitem}`,
		},
		Geometry:      `\geometry{top=0.75in, bottom=0.75in, left=0.75in, right=0.75in}`,
		SectionFormat: `\renewcommand{\section}[1]{\vspace{0.5em}\textbf{\large #1}\vspace{0.25em}\hrule\vspace{0.25em}}`,
	},
	StyleAcademic: {
		DocumentClass: `\documentclass[11pt,a4paper]{article}`,
		Packages: []string{
			`\usepackage[utf8]{inputenc}`,
			`\usepackage[T1]{fontenc}`,
			`\usepackage{geometry}`,
			`\usepackage{enumitem}`,
			`\usepackage{mathptmx}`,
			`\usepackage{hyperref}`,
		},
		Geometry: `\geometry{top=1in, bottom=1in, left=1in, right=1in}`,
	},
}

// Lookup returns the template for a style.
// Every Style constant has a template; the boolean is false only for
// values that bypassed Parse.
func Lookup(style Style) (Template, bool) {
	t, ok := templates[style]
	return t, ok
}
