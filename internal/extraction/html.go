package extraction

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// extractHTML returns the visible text of an HTML document. Script, style
// and navigation chrome are dropped before the text walk.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer").Remove()

	body := doc.Find("body")
	var text string
	if body.Length() > 0 {
		text = body.Text()
	} else {
		text = doc.Text()
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("no text content found in HTML")
	}
	return cleaned, nil
}
