package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aulahub/exindex/pkg/types"
)

// readWorkers bounds concurrent artifact reads during a rebuild. Ordering is
// restored by sorting before serialization, so the rebuild stays
// deterministic regardless of read completion order.
const readWorkers = 8

// Indexer rebuilds the course index from an artifact tree.
type Indexer struct {
	artifactsRoot string
}

// New creates an Indexer over the given artifact output root.
func New(artifactsRoot string) *Indexer {
	return &Indexer{artifactsRoot: artifactsRoot}
}

// Build walks the artifact tree and returns the course index. Top-level
// directories are courses; files at the root (manifest.csv, issues.md) are
// not exercise artifacts and are ignored.
func (ix *Indexer) Build(ctx context.Context) (types.CourseIndex, error) {
	entries, err := os.ReadDir(ix.artifactsRoot)
	if err != nil {
		return nil, fmt.Errorf("read artifact root: %w", err)
	}

	index := make(types.CourseIndex)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		course := entry.Name()
		courseEntries, err := ix.buildCourse(ctx, course)
		if err != nil {
			return nil, fmt.Errorf("index course %s: %w", course, err)
		}
		if len(courseEntries) == 0 {
			continue
		}
		key := NormalizeCourseKey(course)
		// Accent/case variants of the same course fold into one key.
		index[key] = append(index[key], courseEntries...)
	}

	for key := range index {
		sortEntries(index[key])
	}
	return index, nil
}

// WriteFile builds the index and serializes it to outPath, fully overwriting
// any previous index.
func (ix *Indexer) WriteFile(ctx context.Context, outPath string) (types.CourseIndex, error) {
	index, err := ix.Build(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal index: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}
	return index, nil
}

// buildCourse reads every exercise artifact under one course directory.
func (ix *Indexer) buildCourse(ctx context.Context, course string) ([]types.IndexEntry, error) {
	dir := filepath.Join(ix.artifactsRoot, course)

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]types.IndexEntry, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(readWorkers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			entries[i] = newEntry(filepath.Base(path), string(data), course)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// newEntry derives an index entry from an artifact's filename and content.
// Artifact names follow "NNN_id.txt"; the numeric prefix is the record's
// ordinal within its course folder.
func newEntry(filename, content, course string) types.IndexEntry {
	base := strings.TrimSuffix(filename, ".txt")
	id := base
	number := ""
	if seq, rest, ok := strings.Cut(base, "_"); ok {
		if _, err := strconv.Atoi(seq); err == nil {
			id = rest
			number = strings.TrimLeft(seq, "0")
			if number == "" {
				number = "0"
			}
		}
	}
	return types.IndexEntry{
		ID:             id,
		Number:         number,
		Content:        content,
		Filename:       filename,
		Title:          entryTitle(content, id),
		OriginalCourse: course,
	}
}

// entryTitle is the first non-empty line of the content, capped, falling
// back to the id.
func entryTitle(content, id string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > 80 {
			return string(runes[:80])
		}
		return line
	}
	return id
}

// sortEntries orders by numeric ordinal, then filename for stability.
// Entries whose Number does not parse sort after all numbered ones.
func sortEntries(entries []types.IndexEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ni, ei := strconv.Atoi(entries[i].Number)
		nj, ej := strconv.Atoi(entries[j].Number)
		switch {
		case ei == nil && ej == nil:
			if ni != nj {
				return ni < nj
			}
		case ei == nil:
			return true
		case ej == nil:
			return false
		}
		return entries[i].Filename < entries[j].Filename
	})
}
