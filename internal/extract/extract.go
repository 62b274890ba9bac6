package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aulahub/exindex/pkg/types"
)

const (
	// MinTextLen is the minimum aggregate text length for an extraction to
	// be considered usable. Below this the file is flagged as insufficient
	// (likely a scanned/image PDF needing OCR).
	MinTextLen = 100

	// MinPrintableRatio is the minimum ratio of printable characters.
	// Extractions below it are mojibake (broken font encodings) and go to
	// the issues report like scanned documents do.
	MinPrintableRatio = 0.85
)

// Result holds the text extracted from one source document.
type Result struct {
	// Text is the full extracted text. For PDFs, "--- Page N ---" markers
	// are interleaved before each page's content.
	Text string
	// Pages is the page count for PDFs, zero for formats without pagination.
	Pages int
}

// Extractor dispatches files to the per-format extraction routines.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path and returns its text.
//
// Returns types.ErrUnsupportedFormat for extensions without an extractor and
// types.ErrInsufficientText when the output is too short or too garbled to
// segment.
func (e *Extractor) Extract(path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.extractPDF(path)
	case ".docx":
		return e.extractDOCX(path)
	case ".txt":
		return e.extractText(path)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// checkContent applies the low-content and garbage-text gates shared by all
// formats.
func checkContent(text string) error {
	if len([]rune(text)) < MinTextLen {
		return fmt.Errorf("%w: %d chars", types.ErrInsufficientText, len([]rune(text)))
	}
	if ratio := printableRatio(text); ratio < MinPrintableRatio {
		return fmt.Errorf("%w: printable ratio %.2f", types.ErrInsufficientText, ratio)
	}
	return nil
}
