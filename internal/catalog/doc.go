// Package catalog mirrors manifest rows into a SQLite database for audit
// queries: per-run statistics and duplicate-content reporting.
//
// The catalog is an audit mirror, never the source of truth. The CSV
// manifest and the text artifacts remain the durable store; dropping the
// catalog database loses nothing that cannot be re-derived.
//
// Exercise IDs are not unique across runs by design (same source, same
// sequence, same ID). The catalog therefore keys rows by (run, ordinal) and
// exposes duplicates through DuplicateHashes instead of reconciling them:
// whether repeated rows are noise or audit trail is a product question the
// pipeline does not answer.
package catalog
