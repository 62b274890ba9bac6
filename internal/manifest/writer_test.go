package manifest

import (
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulahub/exindex/pkg/types"
)

func testExercise(n int) *types.Exercise {
	e := &types.Exercise{
		ID:         fmt.Sprintf("guia_%d", n),
		Title:      fmt.Sprintf("Ejercicio %d", n),
		Type:       types.TypeEjercicio,
		Number:     fmt.Sprintf("%d", n),
		SourceFile: "guia.pdf",
		SourcePath: "/materiales/Cálculo I/guia.pdf",
		Page:       "1",
		Content:    fmt.Sprintf("Ejercicio %d: Calcule la derivada de f(x) = x^%d.", n, n),
	}
	e.Summary = types.Summarize(e.Content)
	return e
}

func readManifest(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter_ExportRoundTrip(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root)
	require.NoError(t, err)
	defer w.Close()

	e := testExercise(1)
	row, err := w.Export(e, "Cálculo I", 1)
	require.NoError(t, err)

	// Artifact exists under the course dir, named by sequence + id.
	artifact := filepath.Join(root, "Cálculo I", "001_guia_1.txt")
	data, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Equal(t, e.Content, string(data))

	// hash_exportado equals the SHA-256 of the exact bytes written.
	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256(data)), row.ContentHash)
	assert.Equal(t, "001_guia_1.txt", row.ExportedFile)
}

func TestWriter_HeaderOnceAppendAcrossRuns(t *testing.T) {
	root := t.TempDir()

	w1, err := NewWriter(root)
	require.NoError(t, err)
	_, err = w1.Export(testExercise(1), "Fisica", 1)
	require.NoError(t, err)
	require.NoError(t, w1.Close())

	// Second run appends; no reconciliation of earlier rows.
	w2, err := NewWriter(root)
	require.NoError(t, err)
	_, err = w2.Export(testExercise(1), "Fisica", 1)
	require.NoError(t, err)
	require.NoError(t, w2.Close())

	rows := readManifest(t, filepath.Join(root, "manifest.csv"))
	require.Len(t, rows, 3) // header + 2 rows
	assert.Equal(t, types.ManifestHeader(), rows[0])
	// Duplicate IDs across runs are kept, not merged.
	assert.Equal(t, rows[1][0], rows[2][0])
}

func TestWriter_InvalidExerciseRejected(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	defer w.Close()

	bad := testExercise(1)
	bad.Content = ""
	_, err = w.Export(bad, "Fisica", 1)
	assert.ErrorIs(t, err, types.ErrInvalidExercise)
}

func TestSanitizeGroup(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Cálculo I", "Cálculo I"},
		{"Algebra/Lineal", "Algebra_Lineal"},
		{`Quimica: "General"`, "Quimica_ _General_"},
		{"", "sin_curso"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeGroup(tt.in), tt.in)
	}
}

func TestIssuesReport(t *testing.T) {
	r := NewIssuesReport()
	assert.Zero(t, r.Len())

	r.Add("escaneado.pdf", "insufficient text content: 12 chars")
	r.Add("https://drive.google.com/file/d/abc", "download failed: 403")
	require.Equal(t, 2, r.Len())

	path := filepath.Join(t.TempDir(), "issues.md")
	require.NoError(t, r.Flush(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Archivos con problemas de extracción")
	assert.Contains(t, string(data), "escaneado.pdf")
	assert.Contains(t, string(data), "403")
}

func TestIssuesReport_EmptyWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.md")
	require.NoError(t, NewIssuesReport().Flush(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
