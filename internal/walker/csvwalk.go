package walker

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aulahub/exindex/internal/drive"
)

// csvRow is one parsed row of the input CSV: a Drive URL plus the course
// label used as the output grouping key.
type csvRow struct {
	url    string
	course string
	line   int
}

// header aliases accepted for the two required columns.
var (
	urlHeaders    = []string{"url", "enlace", "link", "archivo_url"}
	courseHeaders = []string{"curso", "course", "materia", "asignatura"}
)

// WalkCSV processes a CSV of Drive-hosted files: for each row with a
// resolvable file ID, the file is downloaded to a temp path, run through the
// processing chain with the row's course label as grouping key, then the temp
// file is deleted. Download failures are logged per row and never halt the
// batch.
func (p *Pipeline) WalkCSV(ctx context.Context, csvPath string, client drive.Client) (*Stats, error) {
	rows, err := parseCSV(csvPath)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, row := range rows {
		p.processRemote(ctx, row, client, stats)
	}
	return stats, nil
}

func (p *Pipeline) processRemote(ctx context.Context, row csvRow, client drive.Client, stats *Stats) {
	fileID := drive.ExtractFileIDFromURL(row.url)
	if fileID == "" {
		stats.FilesSkipped++
		p.log.Warn("no drive file id in url, skipping row", "line", row.line, "url", row.url)
		return
	}

	meta, err := client.GetFileMetadata(ctx, fileID)
	if err != nil {
		stats.DownloadsFailed++
		p.issues.Add(row.url, "metadata fetch failed: "+err.Error())
		p.log.Warn("metadata fetch failed, skipping row", "line", row.line, "url", row.url, "error", err)
		return
	}

	tmp, err := os.CreateTemp("", "exindex-*"+remoteExt(meta))
	if err != nil {
		stats.DownloadsFailed++
		p.issues.Add(row.url, "temp file: "+err.Error())
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := client.DownloadFile(ctx, fileID, tmpPath); err != nil {
		stats.DownloadsFailed++
		p.issues.Add(row.url, "download failed: "+err.Error())
		p.log.Warn("download failed, skipping row", "line", row.line, "url", row.url, "error", err)
		return
	}

	// Provenance records the originating URL, not the temp path. The temp
	// file needs the original name's extension for extractor dispatch, but
	// the manifest's archivo_origen should show the Drive file name.
	p.processNamed(ctx, tmpPath, meta.Name, row.url, row.course, stats)
}

// processNamed is processFile with the source filename overridden, for
// downloads whose local temp name is synthetic.
func (p *Pipeline) processNamed(ctx context.Context, localPath, sourceFile, sourcePath, group string, stats *Stats) {
	// Rename the temp file so filepath.Base matches the real source name.
	named := filepath.Join(filepath.Dir(localPath), sourceFile)
	if err := os.Rename(localPath, named); err == nil {
		localPath = named
		defer os.Remove(named)
	}
	p.processFile(ctx, localPath, sourcePath, group, stats)
}

// remoteExt picks the temp-file extension: the metadata name's extension, or
// .txt for exported Google Workspace documents.
func remoteExt(meta *drive.FileMetadata) string {
	if ext := filepath.Ext(meta.Name); ext != "" {
		return ext
	}
	if strings.HasPrefix(meta.MimeType, "application/vnd.google-apps.") {
		return ".txt"
	}
	return ""
}

// parseCSV reads the input CSV and resolves the URL and course columns from
// the header row.
func parseCSV(path string) ([]csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	urlCol := findColumn(header, urlHeaders)
	courseCol := findColumn(header, courseHeaders)
	if urlCol < 0 || courseCol < 0 {
		return nil, fmt.Errorf("csv header must contain a url column (%s) and a course column (%s)",
			strings.Join(urlHeaders, "/"), strings.Join(courseHeaders, "/"))
	}

	var rows []csvRow
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			// Malformed row: skip, keep going.
			continue
		}
		if urlCol >= len(record) || courseCol >= len(record) {
			continue
		}
		url := strings.TrimSpace(record[urlCol])
		course := strings.TrimSpace(record[courseCol])
		if url == "" {
			continue
		}
		rows = append(rows, csvRow{url: url, course: course, line: line})
	}
	return rows, nil
}

func findColumn(header, aliases []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, a := range aliases {
			if h == a {
				return i
			}
		}
	}
	return -1
}
