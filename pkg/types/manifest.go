package types

import "time"

// ManifestTimeFormat is the timestamp layout used in the fecha_extracción
// column.
const ManifestTimeFormat = time.RFC3339

// ManifestRow is one append-only CSV row per exported exercise. The column
// names are a contract with the existing front end and its admin tooling and
// must not change.
type ManifestRow struct {
	ExerciseID   string
	Title        string
	Type         ExerciseType
	Number       string
	Summary      string
	SourceFile   string
	SourcePath   string
	Page         string
	ExportedFile string
	ContentHash  string
	ExtractedAt  time.Time
}

// ManifestHeader returns the CSV header row.
func ManifestHeader() []string {
	return []string{
		"ID_ejercicio",
		"título",
		"tipo",
		"número",
		"resumen_enunciado",
		"archivo_origen",
		"ruta_origen",
		"página_or_slide",
		"archivo_exportado",
		"hash_exportado",
		"fecha_extracción",
	}
}

// Fields returns the row serialized in header order.
func (r *ManifestRow) Fields() []string {
	return []string{
		r.ExerciseID,
		r.Title,
		string(r.Type),
		r.Number,
		r.Summary,
		r.SourceFile,
		r.SourcePath,
		r.Page,
		r.ExportedFile,
		r.ContentHash,
		r.ExtractedAt.Format(ManifestTimeFormat),
	}
}

// NewManifestRow builds a row from an exercise and its export result.
func NewManifestRow(e *Exercise, exportedFile, contentHash string, extractedAt time.Time) ManifestRow {
	return ManifestRow{
		ExerciseID:   e.ID,
		Title:        e.Title,
		Type:         e.Type,
		Number:       e.Number,
		Summary:      e.Summary,
		SourceFile:   e.SourceFile,
		SourcePath:   e.SourcePath,
		Page:         e.Page,
		ExportedFile: exportedFile,
		ContentHash:  contentHash,
		ExtractedAt:  extractedAt,
	}
}
