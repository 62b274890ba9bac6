// Package manifest persists exercise records: one text artifact per record
// plus an append-only CSV manifest row carrying provenance and a SHA-256
// content hash, and a Markdown issues report for files needing manual
// follow-up.
//
// The CSV is never rewritten or deduplicated across runs. There is no
// transactionality across the artifact write and the manifest append; a crash
// between the two can leave an artifact with no manifest row. Accepted risk
// for a manually invoked batch tool.
package manifest
