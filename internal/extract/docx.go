package extract

import (
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX extracts raw text from a .docx file. No page markers: DOCX has
// no fixed pagination, so every record segmented from it carries page
// "Unknown".
func (e *Extractor) extractDOCX(path string) (*Result, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer r.Close()

	// GetContent returns the raw document.xml; paragraph closes become
	// newlines before the tags are stripped so line-based segmentation
	// still sees paragraph boundaries.
	content := r.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	text := strings.TrimSpace(stripXMLTags(content))

	if err := checkContent(text); err != nil {
		return nil, err
	}
	return &Result{Text: text}, nil
}

// stripXMLTags removes XML markup, keeping character data only.
func stripXMLTags(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
