package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aulahub/exindex/pkg/types"
)

// Catalog is a SQLite mirror of the CSV manifest, keyed by run.
type Catalog struct {
	db   *sql.DB
	path string
}

// RunStats are the per-run counters persisted when a run finishes.
type RunStats struct {
	FilesProcessed   int
	FilesSkipped     int
	FilesFailed      int
	DownloadsFailed  int
	ExercisesWritten int
}

// Duplicate reports one content hash exported more than once, with the
// exercise IDs that share it.
type Duplicate struct {
	Hash        string
	Count       int
	ExerciseIDs []string
}

// Open opens (creating if needed) the catalog database at path and applies
// the schema.
func Open(ctx context.Context, path string) (*Catalog, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}

	// WAL for better write behavior under repeated append runs.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Single connection avoids SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := applySchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{db: db, path: path}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}

// BeginRun records a new extraction run and returns its ID. Mode is "local"
// or "csv"; source is the input directory or CSV path.
func (c *Catalog) BeginRun(ctx context.Context, mode, source string) (string, error) {
	runID := uuid.New().String()
	_, err := c.db.ExecContext(ctx,
		"INSERT INTO runs (id, mode, source, started_at) VALUES (?, ?, ?, ?)",
		runID, mode, source, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return runID, nil
}

// FinishRun stamps the run's end time and stores its counters.
func (c *Catalog) FinishRun(ctx context.Context, runID string, stats RunStats) error {
	res, err := c.db.ExecContext(ctx, `
		UPDATE runs SET
			finished_at = ?,
			files_processed = ?,
			files_skipped = ?,
			files_failed = ?,
			downloads_failed = ?,
			exercises_written = ?
		WHERE id = ?`,
		time.Now().UTC(),
		stats.FilesProcessed, stats.FilesSkipped, stats.FilesFailed,
		stats.DownloadsFailed, stats.ExercisesWritten,
		runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish run: %w: run %s", types.ErrNotFound, runID)
	}
	return nil
}

// Run is a recorded extraction run.
type Run struct {
	ID         string
	Mode       string
	Source     string
	StartedAt  time.Time
	FinishedAt *time.Time
	Stats      RunStats
}

// Runs returns all recorded runs, newest first.
func (c *Catalog) Runs(ctx context.Context) ([]Run, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, mode, source, started_at, finished_at,
			files_processed, files_skipped, files_failed,
			downloads_failed, exercises_written
		FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished sql.NullTime
		err := rows.Scan(&r.ID, &r.Mode, &r.Source, &r.StartedAt, &finished,
			&r.Stats.FilesProcessed, &r.Stats.FilesSkipped, &r.Stats.FilesFailed,
			&r.Stats.DownloadsFailed, &r.Stats.ExercisesWritten)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			r.FinishedAt = &t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// recorder binds manifest rows to one run.
type recorder struct {
	cat   *Catalog
	runID string
}

// Recorder returns a per-run row recorder for the extraction pipeline.
func (c *Catalog) Recorder(runID string) *recorder {
	return &recorder{cat: c, runID: runID}
}

// RecordRow mirrors one manifest row into the catalog.
func (r *recorder) RecordRow(ctx context.Context, row types.ManifestRow) error {
	_, err := r.cat.db.ExecContext(ctx, `
		INSERT INTO rows (
			run_id, exercise_id, title, tipo, numero, resumen,
			archivo_origen, ruta_origen, pagina,
			archivo_exportado, hash_exportado, fecha_extraccion
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.runID, row.ExerciseID, row.Title, string(row.Type), row.Number,
		row.Summary, row.SourceFile, row.SourcePath, row.Page,
		row.ExportedFile, row.ContentHash, row.ExtractedAt.UTC())
	if err != nil {
		return fmt.Errorf("record row: %w", err)
	}
	return nil
}

// Totals are aggregate counts across all recorded runs.
type Totals struct {
	Runs      int
	Rows      int
	Exercises int
	Materials int
	Sources   int
}

// Stats returns aggregate counts across all runs.
func (c *Catalog) Stats(ctx context.Context) (Totals, error) {
	var t Totals
	err := c.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM runs),
			(SELECT COUNT(*) FROM rows),
			(SELECT COUNT(*) FROM rows WHERE tipo = ?),
			(SELECT COUNT(*) FROM rows WHERE tipo = ?),
			(SELECT COUNT(DISTINCT archivo_origen) FROM rows)`,
		string(types.TypeEjercicio), string(types.TypeMaterial)).
		Scan(&t.Runs, &t.Rows, &t.Exercises, &t.Materials, &t.Sources)
	if err != nil {
		return Totals{}, fmt.Errorf("query stats: %w", err)
	}
	return t, nil
}

// DuplicateHashes reports content hashes exported more than once across all
// runs. Duplicates are expected when the same source is reprocessed; the
// catalog surfaces them and never reconciles.
func (c *Catalog) DuplicateHashes(ctx context.Context) ([]Duplicate, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT hash_exportado, COUNT(*), GROUP_CONCAT(exercise_id, ',')
		FROM rows
		GROUP BY hash_exportado
		HAVING COUNT(*) > 1
		ORDER BY COUNT(*) DESC, hash_exportado`)
	if err != nil {
		return nil, fmt.Errorf("query duplicates: %w", err)
	}
	defer rows.Close()

	var dupes []Duplicate
	for rows.Next() {
		var d Duplicate
		var ids string
		if err := rows.Scan(&d.Hash, &d.Count, &ids); err != nil {
			return nil, fmt.Errorf("scan duplicate: %w", err)
		}
		d.ExerciseIDs = splitIDs(ids)
		dupes = append(dupes, d)
	}
	return dupes, rows.Err()
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
