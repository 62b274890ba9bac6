package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aulahub/exindex/pkg/types"
)

// Writer exports exercise records as text artifacts under an output root and
// appends one CSV manifest row per record. Safe for sequential use only; the
// pipeline processes files one at a time.
type Writer struct {
	outputRoot   string
	manifestPath string

	file *os.File
	csv  *csv.Writer
	now  func() time.Time
}

// NewWriter opens (or creates) the manifest CSV under outputRoot. The header
// is written only when the file is created, so re-runs keep appending to the
// same ledger.
func NewWriter(outputRoot string) (*Writer, error) {
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create output root: %w", err)
	}

	manifestPath := filepath.Join(outputRoot, "manifest.csv")
	info, err := os.Stat(manifestPath)
	fresh := err != nil || info.Size() == 0

	f, err := os.OpenFile(manifestPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}

	w := &Writer{
		outputRoot:   outputRoot,
		manifestPath: manifestPath,
		file:         f,
		csv:          csv.NewWriter(f),
		now:          time.Now,
	}

	if fresh {
		if err := w.csv.Write(types.ManifestHeader()); err != nil {
			f.Close()
			return nil, fmt.Errorf("write manifest header: %w", err)
		}
		w.csv.Flush()
	}
	return w, nil
}

// ManifestPath returns the path of the manifest CSV.
func (w *Writer) ManifestPath() string { return w.manifestPath }

// Export writes the exercise body to a standalone text artifact under
// outputRoot/group (created if absent), computes the SHA-256 of the exact
// bytes written, and appends the manifest row. group is the course grouping
// key: the source's parent folder for local walks, or the CSV-provided course
// label for remote walks. seq is the record's sequence within its source.
func (w *Writer) Export(e *types.Exercise, group string, seq int) (types.ManifestRow, error) {
	if err := e.Validate(); err != nil {
		return types.ManifestRow{}, err
	}

	dir := filepath.Join(w.outputRoot, sanitizeGroup(group))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return types.ManifestRow{}, fmt.Errorf("create course dir: %w", err)
	}

	name := e.ArtifactName(seq)
	content := []byte(e.Content)
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		return types.ManifestRow{}, fmt.Errorf("write artifact %s: %w", name, err)
	}

	row := types.NewManifestRow(e, name, types.ContentHash(content), w.now().UTC())
	if err := w.csv.Write(row.Fields()); err != nil {
		return types.ManifestRow{}, fmt.Errorf("append manifest row: %w", err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return types.ManifestRow{}, fmt.Errorf("flush manifest: %w", err)
	}
	return row, nil
}

// Close flushes and closes the manifest.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// sanitizeGroup keeps course directory names filesystem-safe while preserving
// accents and case; the indexer normalizes them later.
func sanitizeGroup(group string) string {
	if group == "" {
		return "sin_curso"
	}
	out := make([]rune, 0, len(group))
	for _, r := range group {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			out = append(out, '_')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
