package manifest

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// IssuesReport accumulates one free-text entry per file that failed
// extraction, had insufficient text, or could not be downloaded, for manual
// follow-up (typically OCR). Flushed to a Markdown file at end of run.
type IssuesReport struct {
	entries []string
	now     func() time.Time
}

// NewIssuesReport creates an empty report.
func NewIssuesReport() *IssuesReport {
	return &IssuesReport{now: time.Now}
}

// Add records an issue for the given source.
func (r *IssuesReport) Add(source, reason string) {
	r.entries = append(r.entries, fmt.Sprintf("- **%s**: %s", source, reason))
}

// Len returns the number of recorded issues.
func (r *IssuesReport) Len() int { return len(r.entries) }

// Flush writes the report to path. Nothing is written when there are no
// issues; an existing report from a previous run is left untouched in that
// case.
func (r *IssuesReport) Flush(path string) error {
	if len(r.entries) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("# Archivos con problemas de extracción\n\n")
	sb.WriteString(fmt.Sprintf("Generado: %s\n\n", r.now().UTC().Format(time.RFC3339)))
	for _, e := range r.entries {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
