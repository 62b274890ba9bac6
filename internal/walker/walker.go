package walker

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/aulahub/exindex/internal/extract"
	"github.com/aulahub/exindex/internal/manifest"
	"github.com/aulahub/exindex/internal/segment"
	"github.com/aulahub/exindex/pkg/types"
)

// RowRecorder mirrors manifest rows into the run catalog. Optional: a nil
// recorder disables cataloging without touching the durable CSV store.
type RowRecorder interface {
	RecordRow(ctx context.Context, row types.ManifestRow) error
}

// Stats counts per-run outcomes. Failures here are per-file: the run itself
// always completes.
type Stats struct {
	FilesProcessed   int
	FilesSkipped     int
	FilesFailed      int
	LowTextFiles     int
	DownloadsFailed  int
	ExercisesWritten int
}

// Pipeline chains extractor, segmenter and writer over a source walk.
type Pipeline struct {
	extractor *extract.Extractor
	segmenter *segment.Segmenter
	writer    *manifest.Writer
	issues    *manifest.IssuesReport
	recorder  RowRecorder
	log       *slog.Logger
}

// NewPipeline wires the processing chain. recorder may be nil.
func NewPipeline(w *manifest.Writer, issues *manifest.IssuesReport, recorder RowRecorder, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		extractor: extract.New(),
		segmenter: segment.New(),
		writer:    w,
		issues:    issues,
		recorder:  recorder,
		log:       log,
	}
}

// processFile runs one source document through extract → segment → export.
// sourcePath is the provenance recorded in the manifest (local path or
// originating URL); group is the course grouping key for the output tree.
func (p *Pipeline) processFile(ctx context.Context, localPath, sourcePath, group string, stats *Stats) {
	sourceFile := filepath.Base(localPath)

	res, err := p.extractor.Extract(localPath)
	switch {
	case errors.Is(err, types.ErrUnsupportedFormat):
		stats.FilesSkipped++
		return
	case errors.Is(err, types.ErrInsufficientText):
		stats.LowTextFiles++
		p.issues.Add(sourcePath, err.Error())
		p.log.Warn("insufficient text, skipping", "source", sourcePath)
		return
	case err != nil:
		stats.FilesFailed++
		p.issues.Add(sourcePath, "extraction failed: "+err.Error())
		p.log.Warn("extraction failed, skipping", "source", sourcePath, "error", err)
		return
	}

	records := p.segmenter.Split(res.Text, sourceFile)
	if len(records) == 0 {
		// Nothing segmentable and too short for the whole-document
		// fallback. Not an error.
		stats.FilesSkipped++
		return
	}

	written := 0
	for i := range records {
		records[i].SourcePath = sourcePath
		seq := i + 1
		row, err := p.writer.Export(&records[i], group, seq)
		if err != nil {
			stats.FilesFailed++
			p.issues.Add(sourcePath, "export failed: "+err.Error())
			p.log.Warn("export failed", "source", sourcePath, "exercise", records[i].ID, "error", err)
			continue
		}
		written++
		if p.recorder != nil {
			if err := p.recorder.RecordRow(ctx, row); err != nil {
				// Catalog is an audit mirror; the CSV row is already
				// durable, so log and continue.
				p.log.Warn("catalog record failed", "exercise", row.ExerciseID, "error", err)
			}
		}
	}

	stats.FilesProcessed++
	stats.ExercisesWritten += written
	p.log.Info("processed", "source", sourceFile, "course", group, "exercises", written)
}
