package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageMarker formats the page boundary marker interleaved in PDF text.
// Downstream page attribution scans for these markers, so the format is a
// contract with the segmenter.
func PageMarker(page int) string {
	return fmt.Sprintf("--- Page %d ---", page)
}

// extractPDF reads every page of the PDF in order and concatenates the page
// texts with markers interleaved. Pages that fail text extraction (image-only
// or damaged content streams) are skipped rather than failing the document.
func (e *Extractor) extractPDF(path string) (*Result, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	var sb strings.Builder

	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		sb.WriteString(PageMarker(i))
		sb.WriteByte('\n')
		sb.WriteString(text)
		sb.WriteByte('\n')
	}

	out := sb.String()
	if err := checkContent(stripMarkers(out)); err != nil {
		return nil, err
	}
	return &Result{Text: out, Pages: total}, nil
}

// stripMarkers removes page markers so the content gates measure real text.
func stripMarkers(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "--- Page ") && strings.HasSuffix(line, " ---") {
			continue
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
