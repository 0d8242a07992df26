package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDocx reads the main document part of a DOCX archive and joins its
// paragraph text. Legacy binary .doc files are not a zip archive and fail
// with a read error.
func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("not a valid docx archive: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document part: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("failed to read document part: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("docx archive has no word/document.xml")
	}

	text, err := docxParagraphText(docXML)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("no text content found in docx")
	}
	return text, nil
}

// docxParagraphText walks the WordprocessingML token stream collecting w:t
// character data, inserting a newline at each w:p paragraph boundary.
func docxParagraphText(docXML []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(docXML))

	var sb strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed document xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return CleanText(sb.String()), nil
}
