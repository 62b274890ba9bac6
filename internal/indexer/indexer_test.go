package indexer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulahub/exindex/pkg/types"
)

func TestNormalizeCourseKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Cálculo I", "calculo i"},
		{"calculo i", "calculo i"},
		{"  Física II ", "fisica ii"},
		{"ÁLGEBRA Lineal", "algebra lineal"},
		{"Programación", "programacion"},
		{"already plain", "already plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCourseKey(tt.in), tt.in)
	}
}

func TestNormalizeCourseKey_AccentAndCaseVariantsCollide(t *testing.T) {
	// The UI and the pipeline drift on accents and casing; both spellings
	// must land on the same lookup key.
	assert.Equal(t, NormalizeCourseKey("Cálculo I"), NormalizeCourseKey("calculo i"))
}

func writeArtifact(t *testing.T, root, course, name, content string) {
	t.Helper()
	dir := filepath.Join(root, course)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestBuild(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "Cálculo I", "001_guia_1.txt", "Ejercicio 1: Calcule la derivada.")
	writeArtifact(t, root, "Cálculo I", "002_guia_2.txt", "Ejercicio 2: Resuelva la integral.")
	writeArtifact(t, root, "Física", "001_tarea_1.txt", "Problema 1: Calcule la velocidad.")
	// Root-level files are not artifacts.
	require.NoError(t, os.WriteFile(filepath.Join(root, "manifest.csv"), []byte("header"), 0o644))

	index, err := New(root).Build(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, index.Courses())
	calculo := index["calculo i"]
	require.Len(t, calculo, 2)
	assert.Equal(t, "guia_1", calculo[0].ID)
	assert.Equal(t, "guia_2", calculo[1].ID)
	assert.Equal(t, "1", calculo[0].Number)
	assert.Equal(t, "001_guia_1.txt", calculo[0].Filename)
	assert.Equal(t, "Cálculo I", calculo[0].OriginalCourse)
	assert.Equal(t, "Ejercicio 1: Calcule la derivada.", calculo[0].Content)
	assert.Equal(t, "Ejercicio 1: Calcule la derivada.", calculo[0].Title)

	fisica := index["fisica"]
	require.Len(t, fisica, 1)
	assert.Equal(t, "tarea_1", fisica[0].ID)
}

func TestBuild_OrderingIsDeterministic(t *testing.T) {
	root := t.TempDir()
	// Written out of order; the index must sort by ordinal.
	writeArtifact(t, root, "Algebra", "010_guia_10.txt", "Ejercicio 10: contenido decimo.")
	writeArtifact(t, root, "Algebra", "002_guia_2.txt", "Ejercicio 2: contenido segundo.")
	writeArtifact(t, root, "Algebra", "001_guia_1.txt", "Ejercicio 1: contenido primero.")

	index, err := New(root).Build(context.Background())
	require.NoError(t, err)

	entries := index["algebra"]
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"1", "2", "10"},
		[]string{entries[0].Number, entries[1].Number, entries[2].Number})
}

func TestBuild_AccentVariantFoldersMerge(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "Cálculo I", "001_a_1.txt", "Ejercicio 1: primero.")
	writeArtifact(t, root, "Calculo I", "001_b_1.txt", "Ejercicio 1: segundo.")

	index, err := New(root).Build(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, index.Courses())
	assert.Len(t, index["calculo i"], 2)
}

func TestWriteFile_FullOverwrite(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "index.json")
	writeArtifact(t, root, "Quimica", "001_guia_1.txt", "Ejercicio 1: balancee la ecuacion.")

	ix := New(root)
	_, err := ix.WriteFile(context.Background(), out)
	require.NoError(t, err)

	// Remove the course and rebuild: the stale entry must be gone.
	require.NoError(t, os.RemoveAll(filepath.Join(root, "Quimica")))
	writeArtifact(t, root, "Biologia", "001_tp_1.txt", "Ejercicio 1: describa la celula.")
	_, err = ix.WriteFile(context.Background(), out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var decoded types.CourseIndex
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "quimica")
	assert.Contains(t, decoded, "biologia")
}

func TestBuild_EmptyRoot(t *testing.T) {
	index, err := New(t.TempDir()).Build(context.Background())
	require.NoError(t, err)
	assert.Zero(t, index.Courses())
}

func TestBuild_MissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope")).Build(context.Background())
	assert.Error(t, err)
}

func TestNewEntry_UnparseableName(t *testing.T) {
	e := newEntry("apuntes.txt", "contenido del apunte", "Historia")
	assert.Equal(t, "apuntes", e.ID)
	assert.Empty(t, e.Number)
}

func TestSortEntries_MixedNumbers(t *testing.T) {
	entries := []types.IndexEntry{
		{Number: "", Filename: "zz_apuntes.txt"},
		{Number: "10", Filename: "010_guia_10.txt"},
		{Number: "", Filename: "aa_apuntes.txt"},
		{Number: "2", Filename: "002_guia_2.txt"},
		{Number: "1", Filename: "001_guia_1.txt"},
	}
	sortEntries(entries)

	// Numbered entries first in ordinal order, unnumbered after by filename.
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Filename
	}
	assert.Equal(t, []string{
		"001_guia_1.txt",
		"002_guia_2.txt",
		"010_guia_10.txt",
		"aa_apuntes.txt",
		"zz_apuntes.txt",
	}, got)
}
