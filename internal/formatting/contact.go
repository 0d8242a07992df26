package formatting

import (
	"regexp"
	"strings"
)

// ContactInfo holds the contact fields pulled from the top of a resume.
// Fields are empty strings when nothing matched.
type ContactInfo struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string
	Location string
}

// contactScanLines caps how many leading lines are inspected for contact info.
const contactScanLines = 10

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`\+?[1-9]?[-\s.]?\(?[0-9]{3}\)?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4}`)
	linkedinRe = regexp.MustCompile(`linkedin\.com/in/[\w\-]+`)
	githubRe   = regexp.MustCompile(`github\.com/[\w\-]+`)
)

// nameExclusions are substrings that disqualify a line from being the name.
var nameExclusions = []string{"@", "phone", "email", "linkedin", "github"}

// ExtractContactInfo scans the first 10 lines of resume text for contact
// fields. Each field keeps its first match; a single line can populate
// several fields at once.
func ExtractContactInfo(text string) ContactInfo {
	var info ContactInfo

	lines := strings.Split(text, "\n")
	if len(lines) > contactScanLines {
		lines = lines[:contactScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		if info.Email == "" {
			if m := emailRe.FindString(line); m != "" {
				info.Email = m
			}
		}

		if info.Phone == "" {
			if m := phoneRe.FindString(line); m != "" {
				info.Phone = m
			}
		}

		if info.LinkedIn == "" && strings.Contains(lower, "linkedin") {
			if m := linkedinRe.FindString(lower); m != "" {
				info.LinkedIn = m
			}
		}

		if info.GitHub == "" && strings.Contains(lower, "github") {
			if m := githubRe.FindString(lower); m != "" {
				info.GitHub = m
			}
		}

		if info.Name == "" && line != "" && isPlausibleName(line, lower) {
			info.Name = line
		}
	}

	return info
}

// isPlausibleName reports whether a line looks like a person's name:
// no contact-info markers and at most 4 whitespace-separated tokens.
func isPlausibleName(line, lower string) bool {
	for _, excl := range nameExclusions {
		if strings.Contains(lower, excl) {
			return false
		}
	}
	return len(strings.Fields(line)) <= 4
}
