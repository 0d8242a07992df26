package extraction

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// defaultAllowedExtensions are the upload types the server accepts.
var defaultAllowedExtensions = map[string]bool{
	"pdf":  true,
	"doc":  true,
	"docx": true,
	"tex":  true,
	"txt":  true,
	"md":   true,
}

// allowedMIMETypes maps each extension to the content types an upload with
// that extension may carry. Extensions without an entry skip the MIME check.
var allowedMIMETypes = map[string][]string{
	"pdf": {"application/pdf"},
	"doc": {"application/msword", "application/x-ole-storage"},
	"docx": {
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-word.document.macroEnabled.12",
		"application/zip",
	},
	"tex": {"text/plain", "application/x-tex", "text/x-tex"},
	"txt": {"text/plain"},
	"md":  {"text/plain", "text/markdown"},
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadPolicy validates uploaded files before they reach an extractor.
type UploadPolicy struct {
	AllowedExtensions map[string]bool
}

// NewUploadPolicy returns a policy with the default extension allow-list.
func NewUploadPolicy() *UploadPolicy {
	return &UploadPolicy{AllowedExtensions: defaultAllowedExtensions}
}

// ValidateUpload checks filename and content and returns the secure filename
// to use for any further handling.
func (p *UploadPolicy) ValidateUpload(data []byte, filename string) (string, error) {
	if filename == "" {
		return "", &SecurityError{
			Message: "empty filename",
			Detail:  "uploaded file must have a valid filename",
		}
	}

	secure := SecureFilename(filename)

	if !strings.Contains(secure, ".") {
		return "", &SecurityError{
			Message: "no file extension",
			Detail:  "file must have a valid extension",
		}
	}
	parts := strings.Split(strings.ToLower(secure), ".")
	ext := parts[len(parts)-1]
	if !p.AllowedExtensions[ext] {
		return "", &SecurityError{
			Message: "invalid file extension",
			Detail: fmt.Sprintf("extension %q not allowed, allowed extensions: %s",
				ext, strings.Join(sortedExtensions(p.AllowedExtensions), ", ")),
		}
	}

	if len(data) == 0 {
		return "", &SecurityError{
			Message: "empty file",
			Detail:  "uploaded file appears to be empty",
		}
	}

	if expected := allowedMIMETypes[ext]; len(expected) > 0 {
		detected := mimetype.Detect(data)
		if !mimeMatches(detected, expected) {
			return "", &SecurityError{
				Message: "invalid file type",
				Detail: fmt.Sprintf("file content does not match extension, expected one of %s but detected %s",
					strings.Join(expected, ", "), detected.String()),
			}
		}
	}

	return secure, nil
}

// SecureFilename strips path separators and other unsafe characters.
func SecureFilename(filename string) string {
	secure := unsafeFilenameRe.ReplaceAllString(filename, "_")
	secure = strings.TrimLeft(secure, "._")
	if secure == "" {
		return "upload"
	}
	return secure
}

// mimeMatches walks the detected type and its parents so specializations of
// an allowed type still pass. A docx is a zip; text with a markdown
// extension detects as text/plain or text/markdown.
func mimeMatches(detected *mimetype.MIME, expected []string) bool {
	for m := detected; m != nil; m = m.Parent() {
		for _, want := range expected {
			if m.Is(want) {
				return true
			}
		}
	}
	return false
}

func sortedExtensions(set map[string]bool) []string {
	exts := make([]string, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
