package segment

import (
	"regexp"

	"github.com/aulahub/exindex/pkg/types"
)

// listRe matches generic numbered list items at the start of a line:
// "3." or "3)" followed by whitespace.
var listRe = regexp.MustCompile(`(?m)^[ \t]*(\d+)[.)][ \t]+`)

// ListStrategy segments on generic numbered lines. It sits after
// MarkerStrategy in the chain, so it only ever runs on documents with no
// explicit exercise markers.
type ListStrategy struct{}

// Name implements Strategy.
func (s *ListStrategy) Name() string { return "list" }

// Split implements Strategy.
func (s *ListStrategy) Split(text, sourceFile string) []types.Exercise {
	locs := listRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var records []types.Exercise
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := text[loc[0]:end]
		if bodyLen(body) < MinBodyLen {
			continue
		}

		seq := len(records) + 1
		digits := text[loc[2]:loc[3]]

		records = append(records, types.Exercise{
			ID:         types.DeriveID(sourceFile, seq),
			Title:      "Ejercicio " + digits,
			Type:       types.TypeEjercicio,
			Number:     number(digits, seq),
			SourceFile: sourceFile,
			Page:       pageAt(text, loc[0]),
			Content:    cleanBody(body),
		})
	}
	return records
}
