package drive

import (
	"context"
	"regexp"
)

// FileMetadata is the subset of Drive file metadata the pipeline needs.
type FileMetadata struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
}

// Client is the Drive collaborator consumed by the CSV-driven walker.
type Client interface {
	// GetFileMetadata fetches name, MIME type and size for a file ID.
	GetFileMetadata(ctx context.Context, fileID string) (*FileMetadata, error)
	// DownloadFile downloads the file to destPath. Google Workspace
	// documents are exported to plain text.
	DownloadFile(ctx context.Context, fileID, destPath string) error
}

// Shared-URL shapes that carry a file ID.
var fileIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]{10,})`),
	regexp.MustCompile(`/document/d/([a-zA-Z0-9_-]{10,})`),
	regexp.MustCompile(`/presentation/d/([a-zA-Z0-9_-]{10,})`),
	regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]{10,})`),
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]{10,})`),
}

// ExtractFileIDFromURL pulls the Drive file ID out of a shared URL. Returns
// the empty string when the URL carries no resolvable ID.
func ExtractFileIDFromURL(url string) string {
	for _, re := range fileIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}
