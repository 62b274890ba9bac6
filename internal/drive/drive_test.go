package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFileIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			"file share link",
			"https://drive.google.com/file/d/1aBcD2eFgHiJkLmNoPqR/view?usp=sharing",
			"1aBcD2eFgHiJkLmNoPqR",
		},
		{
			"open with id param",
			"https://drive.google.com/open?id=1aBcD2eFgHiJkLmNoPqR",
			"1aBcD2eFgHiJkLmNoPqR",
		},
		{
			"uc direct download",
			"https://drive.google.com/uc?export=download&id=1aBcD2eFgHiJkLmNoPqR",
			"1aBcD2eFgHiJkLmNoPqR",
		},
		{
			"google doc",
			"https://docs.google.com/document/d/1aBcD2eFgHiJkLmNoPqR/edit",
			"1aBcD2eFgHiJkLmNoPqR",
		},
		{
			"spreadsheet",
			"https://docs.google.com/spreadsheets/d/1aBcD2eFgHiJkLmNoPqR/edit#gid=0",
			"1aBcD2eFgHiJkLmNoPqR",
		},
		{"not a drive url", "https://example.com/apuntes.pdf", ""},
		{"short id rejected", "https://drive.google.com/file/d/abc/view", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFileIDFromURL(tt.url))
		})
	}
}
