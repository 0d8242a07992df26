package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExtractText extracts plain text from data, picking the parser from the
// filename extension. Text-based formats are cleaned and returned as-is;
// binary formats go through their dedicated extractors.
func ExtractText(data []byte, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", &ExtractionError{
				Message: fmt.Sprintf("failed to extract text from %s", filename),
				Cause:   err,
			}
		}
		return text, nil
	case "docx", "doc":
		text, err := extractDocx(data)
		if err != nil {
			return "", &ExtractionError{
				Message: fmt.Sprintf("failed to extract text from %s", filename),
				Cause:   err,
			}
		}
		return text, nil
	case "html", "htm":
		text, err := extractHTML(data)
		if err != nil {
			return "", &ExtractionError{
				Message: fmt.Sprintf("failed to extract text from %s", filename),
				Cause:   err,
			}
		}
		return text, nil
	case "tex", "txt", "md":
		return CleanText(string(data)), nil
	default:
		return "", &UnsupportedTypeError{Extension: ext}
	}
}

// ExtractFromFile reads path and extracts its text content.
func ExtractFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ExtractionError{Message: "file not found", Cause: err}
		}
		return "", &ExtractionError{Message: "failed to read file", Cause: err}
	}
	return ExtractText(data, path)
}
