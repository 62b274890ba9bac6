package segment

import (
	"regexp"
	"strings"

	"github.com/aulahub/exindex/pkg/types"
)

// markerRe matches explicit exercise markers: a keyword followed by a number.
// Case-insensitive so "EJERCICIO 3" and "ejercicio 3" both split.
var markerRe = regexp.MustCompile(`(?i)(ejercicio|problema|pregunta)\s*(\d+)`)

// MarkerStrategy segments on explicit "Ejercicio/Problema/Pregunta N"
// markers. Each record runs from its marker up to the next marker or end of
// text. Matches with bodies shorter than MinBodyLen are discarded as noise.
type MarkerStrategy struct{}

// Name implements Strategy.
func (s *MarkerStrategy) Name() string { return "marker" }

// Split implements Strategy.
func (s *MarkerStrategy) Split(text, sourceFile string) []types.Exercise {
	locs := markerRe.FindAllStringSubmatchIndex(text, -1)
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
		digits := text[loc[4]:loc[5]]
		keyword := canonicalKeyword(text[loc[2]:loc[3]])

		records = append(records, types.Exercise{
			ID:         types.DeriveID(sourceFile, seq),
			Title:      keyword + " " + digits,
			Type:       types.TypeEjercicio,
			Number:     number(digits, seq),
			SourceFile: sourceFile,
			Page:       pageAt(text, loc[0]),
			Content:    cleanBody(body),
		})
	}
	return records
}

// canonicalKeyword title-cases the matched marker keyword.
func canonicalKeyword(kw string) string {
	kw = strings.ToLower(kw)
	return strings.ToUpper(kw[:1]) + kw[1:]
}
