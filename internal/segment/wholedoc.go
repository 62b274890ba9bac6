package segment

import (
	"path/filepath"
	"strings"

	"github.com/aulahub/exindex/pkg/types"
)

// WholeDocStrategy is the terminal fallback: the entire document becomes one
// material record when no numbered structure was found and the text is long
// enough to be worth keeping.
type WholeDocStrategy struct{}

// Name implements Strategy.
func (s *WholeDocStrategy) Name() string { return "wholedoc" }

// Split implements Strategy.
func (s *WholeDocStrategy) Split(text, sourceFile string) []types.Exercise {
	body := cleanBody(text)
	if len([]rune(body)) <= MinWholeDocLen {
		return nil
	}

	title := strings.TrimSuffix(sourceFile, filepath.Ext(sourceFile))
	return []types.Exercise{{
		ID:         types.DeriveID(sourceFile, 1),
		Title:      title,
		Type:       types.TypeMaterial,
		Number:     "1",
		SourceFile: sourceFile,
		Page:       pageAt(text, 0),
		Content:    body,
	}}
}
