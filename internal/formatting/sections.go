// Package formatting turns raw resume text into a styled LaTeX document:
// it segments text into sections, extracts contact details, applies
// per-section formatting rules, and assembles the final source.
package formatting

import (
	"regexp"
	"strings"
)

// Kind is the canonical category a block of resume text is classified into.
// Arbitrary custom kinds are allowed in a SectionMap; the constants below are
// the ones the parser recognizes.
type Kind string

// Recognized section kinds
const (
	KindHeader         Kind = "header"
	KindSummary        Kind = "summary"
	KindExperience     Kind = "experience"
	KindSkills         Kind = "skills"
	KindEducation      Kind = "education"
	KindProjects       Kind = "projects"
	KindCertifications Kind = "certifications"
	KindAchievements   Kind = "achievements"
	KindPublications   Kind = "publications"
)

// SectionMap maps a section kind to its raw text block.
// Content preceding the first recognized heading lives under KindHeader.
type SectionMap map[Kind]string

// sectionPattern pairs a heading regex with the kind it folds into.
// Patterns are tried in order; the first match wins.
type sectionPattern struct {
	re   *regexp.Regexp
	kind Kind
}

var sectionPatterns = []sectionPattern{
	{regexp.MustCompile(`(?i)^\s*(?:professional\s+)?(?:work\s+)?experience\s*:?\s*$`), KindExperience},
	{regexp.MustCompile(`(?i)^\s*(?:technical\s+)?skills?\s*:?\s*$`), KindSkills},
	{regexp.MustCompile(`(?i)^\s*education\s*:?\s*$`), KindEducation},
	{regexp.MustCompile(`(?i)^\s*(?:professional\s+)?summary\s*:?\s*$`), KindSummary},
	{regexp.MustCompile(`(?i)^\s*projects?\s*:?\s*$`), KindProjects},
	{regexp.MustCompile(`(?i)^\s*certifications?\s*:?\s*$`), KindCertifications},
	{regexp.MustCompile(`(?i)^\s*achievements?\s*:?\s*$`), KindAchievements},
	{regexp.MustCompile(`(?i)^\s*publications?\s*:?\s*$`), KindPublications},
}

// ParseSections splits resume text into sections at recognized heading lines.
//
// Lines that do not match a heading accumulate (verbatim, blank lines
// included) under the current section, which starts at KindHeader. When a
// heading matches, the accumulator is flushed under the previous section
// (joined with newline and trimmed) before switching. If the very first line
// is itself a heading, no header entry is created.
func ParseSections(text string) SectionMap {
	sections := SectionMap{}
	current := KindHeader
	var accumulated []string

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		matched := false
		for _, p := range sectionPatterns {
			if p.re.MatchString(stripped) {
				if len(accumulated) > 0 {
					sections[current] = strings.TrimSpace(strings.Join(accumulated, "\n"))
				}
				current = p.kind
				accumulated = nil
				matched = true
				break
			}
		}

		if !matched {
			accumulated = append(accumulated, line)
		}
	}

	if len(accumulated) > 0 {
		sections[current] = strings.TrimSpace(strings.Join(accumulated, "\n"))
	}

	return sections
}
