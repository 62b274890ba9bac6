package walker

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulahub/exindex/internal/manifest"
	"github.com/aulahub/exindex/pkg/types"
)

func writePDF(t *testing.T, path string, pages ...string) {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Arial", "", 12)
	for _, text := range pages {
		doc.AddPage()
		doc.MultiCell(190, 8, text, "", "L", false)
	}
	require.NoError(t, doc.OutputFileAndClose(path))
}

func newTestPipeline(t *testing.T, outputRoot string) (*Pipeline, *manifest.IssuesReport) {
	t.Helper()
	w, err := manifest.NewWriter(outputRoot)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	issues := manifest.NewIssuesReport()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewPipeline(w, issues, nil, log), issues
}

func readManifest(t *testing.T, outputRoot string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(outputRoot, "manifest.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWalkLocal_EndToEnd(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()

	courseDir := filepath.Join(input, "Cálculo I")
	require.NoError(t, os.MkdirAll(courseDir, 0o755))

	// Two-page PDF: one exercise per page.
	writePDF(t, filepath.Join(courseDir, "guia.pdf"),
		"Ejercicio 1: Calcule la derivada de f(x) = x^2 y justifique cada paso del desarrollo.",
		"Ejercicio 2: Resuelva la integral definida entre 0 y 1 de la funcion g(x) = 3x + 2.",
	)
	// A file no extractor supports: skipped silently.
	require.NoError(t, os.WriteFile(filepath.Join(courseDir, "notas.md"), []byte("# notas"), 0o644))

	p, issues := newTestPipeline(t, output)
	stats, err := p.WalkLocal(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesProcessed)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Equal(t, 2, stats.ExercisesWritten)
	assert.Zero(t, stats.FilesFailed)
	assert.Zero(t, issues.Len())

	// Two manifest rows with page attribution per source page.
	rows := readManifest(t, output)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[1][7])
	assert.Equal(t, "2", rows[2][7])

	// Two artifacts under the course folder.
	entries, err := os.ReadDir(filepath.Join(output, "Cálculo I"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWalkLocal_CorruptFileContinues(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()

	courseDir := filepath.Join(input, "Fisica")
	require.NoError(t, os.MkdirAll(courseDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(courseDir, "roto.pdf"), []byte("junk"), 0o644))
	writePDF(t, filepath.Join(courseDir, "tarea.pdf"),
		"Problema 1: Calcule la velocidad final de un movil que parte del reposo con aceleracion constante de 2 m/s2 durante 10 segundos, y grafique la posicion en funcion del tiempo.")

	p, issues := newTestPipeline(t, output)
	stats, err := p.WalkLocal(context.Background(), input)
	require.NoError(t, err)

	// The corrupt file is reported; the good one still processes.
	assert.Equal(t, 1, stats.FilesProcessed)
	assert.Equal(t, 1, stats.FilesFailed)
	assert.Equal(t, 1, issues.Len())
	assert.Equal(t, 1, stats.ExercisesWritten)
}

func TestWalkLocal_RootFilesGetDefaultGroup(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()

	writePDF(t, filepath.Join(input, "suelto.pdf"),
		"Ejercicio 1: Determine el dominio y el rango de la funcion racional dada en el enunciado, indicando las asintotas verticales y horizontales que presente su grafica.")

	p, _ := newTestPipeline(t, output)
	stats, err := p.WalkLocal(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, 1, stats.FilesProcessed)

	_, err = os.Stat(filepath.Join(output, DefaultGroup))
	assert.NoError(t, err)
}

type recordingRecorder struct {
	rows []types.ManifestRow
}

func (r *recordingRecorder) RecordRow(_ context.Context, row types.ManifestRow) error {
	r.rows = append(r.rows, row)
	return nil
}

func TestPipeline_RecorderMirrorsRows(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()

	courseDir := filepath.Join(input, "Algebra")
	require.NoError(t, os.MkdirAll(courseDir, 0o755))
	writePDF(t, filepath.Join(courseDir, "practica.pdf"),
		"Ejercicio 1: Calcule el determinante de la matriz A dada en el enunciado adjunto y verifique el resultado desarrollando por cofactores a lo largo de la primera fila.")

	w, err := manifest.NewWriter(output)
	require.NoError(t, err)
	defer w.Close()

	rec := &recordingRecorder{}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	p := NewPipeline(w, manifest.NewIssuesReport(), rec, log)

	stats, err := p.WalkLocal(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, 1, stats.ExercisesWritten)

	require.Len(t, rec.rows, 1)
	assert.Equal(t, "practica_1", rec.rows[0].ExerciseID)
	assert.NotEmpty(t, rec.rows[0].ContentHash)
}
