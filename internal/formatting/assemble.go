package formatting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/beetune/internal/styles"
)

// SectionOrder is the canonical emission order for recognized sections.
// Sections not listed here (custom kinds) are emitted afterwards, sorted by
// name so assembly stays deterministic.
var SectionOrder = []Kind{
	KindSummary,
	KindExperience,
	KindSkills,
	KindProjects,
	KindEducation,
	KindCertifications,
	KindAchievements,
	KindPublications,
}

// GenerateHeader builds the LaTeX preamble plus the contact block for a
// style. The preamble ends just after \begin{document}; the contact block is
// a centered name line followed by a bullet-joined contact line, both
// omitted when the corresponding fields are empty.
func GenerateHeader(contact ContactInfo, style styles.Style) (string, error) {
	tmpl, ok := styles.Lookup(style)
	if !ok {
		return "", fmt.Errorf("no template defined for style %q", style)
	}

	parts := []string{tmpl.DocumentClass, ""}
	parts = append(parts, tmpl.Packages...)
	parts = append(parts, "", tmpl.Geometry, "")

	if tmpl.Colors != "" {
		parts = append(parts, tmpl.Colors, "")
	}
	if tmpl.SectionFormat != "" {
		parts = append(parts, tmpl.SectionFormat, "")
	}

	parts = append(parts,
		`\setlength{\parindent}{0pt}`,
		`\setlength{\parskip}{0.5em}`,
		"",
		`\begin{document}`,
		"",
	)

	if contact.Name != "" {
		if style == styles.StyleModern {
			parts = append(parts, `\centerline{\huge\textbf{`+contact.Name+`}}`)
		} else {
			parts = append(parts, `\begin{center}\textbf{\Large `+contact.Name+`}\end{center}`)
		}
		parts = append(parts, "")
	}

	var details []string
	for _, field := range []string{contact.Email, contact.Phone, contact.LinkedIn, contact.GitHub} {
		if field != "" {
			details = append(details, field)
		}
	}
	if len(details) > 0 {
		parts = append(parts, `\centerline{`+strings.Join(details, ` $\bullet$ `)+`}`, "")
	}

	return strings.Join(parts, "\n"), nil
}

// AssembleDocument combines a contact block and parsed sections into one
// LaTeX source string. Recognized sections are emitted in SectionOrder; any
// remaining kinds (except header) follow under their own titles. Assembly
// is deterministic: the same inputs always yield byte-identical output.
func AssembleDocument(contact ContactInfo, sections SectionMap, style styles.Style) (string, error) {
	header, err := GenerateHeader(contact, style)
	if err != nil {
		return "", err
	}

	content := []string{header}

	emitted := make(map[Kind]bool, len(SectionOrder))
	for _, kind := range SectionOrder {
		emitted[kind] = true
		body, ok := sections[kind]
		if !ok || strings.TrimSpace(body) == "" {
			continue
		}
		content = appendSection(content, kind, body)
	}

	var remaining []Kind
	for kind, body := range sections {
		if !emitted[kind] && kind != KindHeader && strings.TrimSpace(body) != "" {
			remaining = append(remaining, kind)
		}
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
	for _, kind := range remaining {
		content = appendSection(content, kind, sections[kind])
	}

	content = append(content, `\end{document}`)

	return strings.Join(content, "\n"), nil
}

// FormatResume extracts contact info, parses sections, and assembles the
// complete LaTeX document for a resume in one call.
func FormatResume(text string, style styles.Style) (string, error) {
	contact := ExtractContactInfo(text)
	sections := ParseSections(text)
	return AssembleDocument(contact, sections, style)
}

// StyleDocument wraps pre-formatted body text in a style's preamble and
// document markers without any section parsing or contact extraction.
func StyleDocument(text string, style styles.Style) (string, error) {
	header, err := GenerateHeader(ContactInfo{}, style)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{header, text, `\end{document}`}, "\n"), nil
}

func appendSection(content []string, kind Kind, body string) []string {
	content = append(content, `\section{`+titleize(kind)+`}`)
	if formatted := FormatSectionContent(kind, body); formatted != "" {
		content = append(content, formatted, "")
	}
	return content
}

// titleize turns a section kind into a display title: underscores become
// spaces, each word is capitalized, and LaTeX specials in custom kinds are
// escaped. Canonical kinds pass through escaping unchanged.
func titleize(kind Kind) string {
	words := strings.Fields(strings.ReplaceAll(string(kind), "_", " "))
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return EscapeLaTeX(strings.Join(words, " "))
}
