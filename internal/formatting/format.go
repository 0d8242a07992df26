package formatting

import (
	"regexp"
	"strings"
)

// formatterFunc converts one section's raw text into LaTeX markup.
type formatterFunc func(content string) string

// sectionFormatters maps a kind to its formatting strategy. Kinds without an
// entry (including custom kinds) fall back to formatGeneric.
var sectionFormatters = map[Kind]formatterFunc{
	KindExperience: formatExperience,
	KindSkills:     formatSkills,
	KindEducation:  formatEducation,
	KindProjects:   formatGeneric,
}

// FormatSectionContent formats a section's raw text according to its kind.
// Returns an empty string for blank content.
func FormatSectionContent(kind Kind, content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}

	if format, ok := sectionFormatters[kind]; ok {
		return format(content)
	}
	return formatGeneric(content)
}

var yearRe = regexp.MustCompile(`\d{4}`)

// isJobHeader reports whether a line looks like a job-entry header: it
// carries a "|" delimiter or a 4-digit year and is not itself a bullet.
// Known limitation: any 4-digit number triggers this, so lines like
// "handled $4000 budget" are misclassified as headers.
func isJobHeader(line string) bool {
	return (strings.Contains(line, "|") || yearRe.MatchString(line)) && !strings.HasPrefix(line, "•")
}

// formatExperience walks lines, emphasizing job-entry headers and folding
// the bullet or plain lines that follow each header into an itemize block.
func formatExperience(content string) string {
	lines := strings.Split(content, "\n")
	var out []string

	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])

		if line == "" {
			i++
			continue
		}

		if isJobHeader(line) {
			out = append(out, `\textbf{`+line+`}`)

			var items []string
			i++
		collect:
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				switch {
				case strings.HasPrefix(next, "•"):
					items = append(items, `\item `+strings.TrimSpace(strings.TrimPrefix(next, "•")))
					i++
				case next != "" && !strings.Contains(next, "|") && !yearRe.MatchString(next):
					items = append(items, `\item `+next)
					i++
				default:
					break collect
				}
			}
			if len(items) > 0 {
				out = append(out, `\begin{itemize}[leftmargin=1em]`)
				out = append(out, items...)
				out = append(out, `\end{itemize}`)
			}
		} else {
			if strings.HasPrefix(line, "•") {
				out = append(out, `\item `+strings.TrimSpace(strings.TrimPrefix(line, "•")))
			} else {
				out = append(out, line)
			}
			i++
		}
	}

	return strings.Join(out, "\n")
}

// formatSkills renders a one-line comma-separated skill list as emphasized
// tokens; anything else becomes a flat bullet-separated list.
func formatSkills(content string) string {
	var clean []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			clean = append(clean, trimmed)
		}
	}

	if len(clean) == 1 && strings.Contains(clean[0], ",") && !strings.Contains(clean[0], ":") {
		var skills []string
		for _, skill := range strings.Split(clean[0], ",") {
			if s := strings.TrimSpace(skill); s != "" {
				skills = append(skills, `\textbf{`+s+`}`)
			}
		}
		return strings.Join(skills, ", ")
	}

	return strings.Join(clean, ` $\bullet$ `)
}

// educationKeywords mark lines worth emphasizing (degrees and institutions).
var educationKeywords = []string{"bachelor", "master", "phd", "university", "college"}

func formatEducation(content string) string {
	var out []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		emphasized := false
		for _, kw := range educationKeywords {
			if strings.Contains(lower, kw) {
				emphasized = true
				break
			}
		}

		if emphasized {
			out = append(out, `\textbf{`+line+`}`)
		} else {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n\n")
}

// formatGeneric converts bullet-prefixed lines into itemize blocks, opening
// one on the first bullet and closing it when a non-bullet line or the end
// of the section is reached. Non-bullet lines pass through unchanged.
func formatGeneric(content string) string {
	var out []string
	inItemize := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
			if !inItemize {
				out = append(out, `\begin{itemize}[leftmargin=1em]`)
				inItemize = true
			}
			item := strings.TrimPrefix(strings.TrimPrefix(line, "•"), "-")
			out = append(out, `\item `+strings.TrimSpace(item))
		} else {
			if inItemize {
				out = append(out, `\end{itemize}`)
				inItemize = false
			}
			if line != "" {
				out = append(out, line)
			}
		}
	}

	if inItemize {
		out = append(out, `\end{itemize}`)
	}

	return strings.Join(out, "\n")
}
