package segment

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aulahub/exindex/pkg/types"
)

// MinBodyLen is the minimum body length for a segmented match to be kept.
// Shorter matches are marker noise (tables of contents, running headers).
const MinBodyLen = 20

// MinWholeDocLen is the minimum text length for the whole-document fallback
// to produce a record.
const MinWholeDocLen = 50

// Strategy is one segmentation heuristic. Returning an empty slice defers to
// the next strategy in the chain.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string
	// Split returns the exercise records found in text, or nil to defer.
	Split(text, sourceFile string) []types.Exercise
}

// Segmenter runs an ordered strategy chain over extracted text.
type Segmenter struct {
	strategies []Strategy
}

// New creates a Segmenter with the default chain: markers, numbered lists,
// whole document.
func New() *Segmenter {
	return NewWithStrategies(
		&MarkerStrategy{},
		&ListStrategy{},
		&WholeDocStrategy{},
	)
}

// NewWithStrategies creates a Segmenter with a custom chain, tried in order.
func NewWithStrategies(strategies ...Strategy) *Segmenter {
	return &Segmenter{strategies: strategies}
}

// Split segments text into exercise records using the first strategy that
// yields a non-empty result. Page attribution and summaries are filled in
// here so individual strategies stay focused on finding boundaries.
func (s *Segmenter) Split(text, sourceFile string) []types.Exercise {
	for _, strat := range s.strategies {
		records := strat.Split(text, sourceFile)
		if len(records) == 0 {
			continue
		}
		for i := range records {
			records[i].Summary = types.Summarize(records[i].Content)
		}
		return records
	}
	return nil
}

var pageMarkerRe = regexp.MustCompile(`--- Page (\d+) ---`)

// pageAt returns the page number of the last "--- Page N ---" marker that
// precedes offset, or types.PageUnknown when there is none (DOCX input, or
// text before the first marker).
func pageAt(text string, offset int) string {
	page := types.PageUnknown
	for _, loc := range pageMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] >= offset {
			break
		}
		page = text[loc[2]:loc[3]]
	}
	return page
}

// cleanBody strips page markers and trims the segment body.
func cleanBody(body string) string {
	return strings.TrimSpace(pageMarkerRe.ReplaceAllString(body, ""))
}

// bodyLen counts the runes of the cleaned body.
func bodyLen(body string) int {
	return len([]rune(cleanBody(body)))
}

// number parses captured digits, defaulting to seq on malformed input.
func number(digits string, seq int) string {
	if _, err := strconv.Atoi(digits); err != nil {
		return strconv.Itoa(seq)
	}
	return digits
}
