package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// CurrentSchemaVersion tracks the catalog schema version.
const CurrentSchemaVersion = "1.0.0"

const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (
    version TEXT PRIMARY KEY,
    applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    mode TEXT NOT NULL,            -- 'local' or 'csv'
    source TEXT NOT NULL,          -- input dir or csv path
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP,
    files_processed INTEGER DEFAULT 0,
    files_skipped INTEGER DEFAULT 0,
    files_failed INTEGER DEFAULT 0,
    downloads_failed INTEGER DEFAULT 0,
    exercises_written INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS rows (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    exercise_id TEXT NOT NULL,     -- not unique across runs, by design
    title TEXT,
    tipo TEXT NOT NULL,
    numero TEXT NOT NULL,
    resumen TEXT,
    archivo_origen TEXT NOT NULL,
    ruta_origen TEXT NOT NULL,
    pagina TEXT NOT NULL,
    archivo_exportado TEXT NOT NULL,
    hash_exportado TEXT NOT NULL,
    fecha_extraccion TIMESTAMP NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_rows_run ON rows(run_id);
CREATE INDEX IF NOT EXISTS idx_rows_exercise ON rows(exercise_id);
CREATE INDEX IF NOT EXISTS idx_rows_hash ON rows(hash_exportado);
`

// applySchema creates the catalog schema when absent and records the version.
func applySchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("apply catalog schema: %w", err)
	}
	_, err := db.ExecContext(ctx,
		"INSERT OR IGNORE INTO schema_version (version) VALUES (?)", CurrentSchemaVersion)
	if err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}
