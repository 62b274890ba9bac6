package extract

import (
	"fmt"
	"os"
	"strings"
)

// extractText reads a plain-text file as-is. This is the path taken by
// Google Workspace documents, which the Drive client exports to text before
// the pipeline sees them.
func (e *Extractor) extractText(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if err := checkContent(text); err != nil {
		return nil, err
	}
	return &Result{Text: text}, nil
}
