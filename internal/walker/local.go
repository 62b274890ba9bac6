package walker

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
)

// DefaultGroup is the course key for files sitting directly in the input
// root, outside any course folder.
const DefaultGroup = "sin_curso"

// WalkLocal recursively walks inputDir depth-first and offers every regular
// file to the processing chain. The file's immediate parent folder (relative
// to inputDir) becomes the course grouping key. Unsupported extensions are
// skipped silently inside the extractor dispatch.
func (p *Pipeline) WalkLocal(ctx context.Context, inputDir string) (*Stats, error) {
	stats := &Stats{}

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			rel = d.Name()
		}
		group := DefaultGroup
		if dir := filepath.Dir(rel); dir != "." {
			group = filepath.Base(dir)
		}

		p.processFile(ctx, path, path, group, stats)
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walk %s: %w", inputDir, err)
	}
	return stats, nil
}
