//go:build !cgo_sqlite

package catalog

// Compiled when building without the cgo_sqlite tag. Uses the pure Go SQLite
// implementation: no C compiler required, cross-compiles everywhere.
//
// Build command:
//   CGO_ENABLED=0 go build ./...

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the SQLite driver to use.
	DriverName = "sqlite"

	// BuildMode describes the current build configuration.
	BuildMode = "purego"
)
