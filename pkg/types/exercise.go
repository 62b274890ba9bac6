package types

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"strings"
)

// ExerciseType classifies a segmented record.
type ExerciseType string

const (
	// TypeEjercicio marks a record produced by one of the numbered-structure
	// segmentation strategies.
	TypeEjercicio ExerciseType = "ejercicio"
	// TypeMaterial marks a whole-document fallback record.
	TypeMaterial ExerciseType = "material"
)

// PageUnknown is the page value when no page could be attributed
// (DOCX input, or text before the first page marker).
const PageUnknown = "Unknown"

// SummaryLen is the number of characters kept from the body as summary.
const SummaryLen = 50

// Exercise is one segmented unit of extracted academic content: a numbered
// problem or question, or the whole document when no structure was found.
//
// Exercises are immutable after write. Re-running the pipeline over the same
// source produces records with the same derived IDs; the manifest is
// append-only and never reconciled, so repeated runs can yield duplicate rows
// referencing the same content. That is deliberate: the manifest is an audit
// trail, and duplicates are surfaced by the catalog rather than silently
// merged.
type Exercise struct {
	ID         string
	Title      string
	Type       ExerciseType
	Number     string
	Summary    string
	SourceFile string
	SourcePath string // local path or originating URL
	Page       string
	Content    string
}

// DeriveID builds the exercise ID from the source filename and the sequence
// number within that source. Not globally unique across runs.
func DeriveID(sourceFile string, seq int) string {
	base := strings.TrimSuffix(sourceFile, filepath.Ext(sourceFile))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	return fmt.Sprintf("%s_%d", base, seq)
}

// Summarize collapses newlines and returns the first SummaryLen characters
// of the body.
func Summarize(body string) string {
	s := strings.Join(strings.Fields(body), " ")
	runes := []rune(s)
	if len(runes) > SummaryLen {
		return string(runes[:SummaryLen])
	}
	return s
}

// ContentHash returns the SHA-256 digest of the content as a hex string.
// The manifest records the hash of the exact bytes written to the artifact,
// so callers must hash the same byte slice they persist.
func ContentHash(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// ArtifactName returns the filename of the exported text artifact for an
// exercise: sequence number, then derived ID.
func (e *Exercise) ArtifactName(seq int) string {
	return fmt.Sprintf("%03d_%s.txt", seq, e.ID)
}

// Validate checks structural invariants before the exercise is written.
func (e *Exercise) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: empty exercise ID", ErrInvalidExercise)
	}
	if e.Content == "" {
		return fmt.Errorf("%w: empty content", ErrInvalidExercise)
	}
	switch e.Type {
	case TypeEjercicio, TypeMaterial:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidExercise, e.Type)
	}
	if e.Number == "" {
		return fmt.Errorf("%w: empty number", ErrInvalidExercise)
	}
	return nil
}
