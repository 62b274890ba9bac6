//go:build cgo_sqlite

package catalog

// Compiled when building with the cgo_sqlite tag. Uses the C SQLite driver,
// noticeably faster on large catalogs.
//
// Build command:
//   CGO_ENABLED=1 go build -tags cgo_sqlite ./...

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the SQLite driver to use.
	DriverName = "sqlite3"

	// BuildMode describes the current build configuration.
	BuildMode = "cgo"
)
