// Package types defines the shared domain types for the exindex pipeline.
//
// The pipeline turns course documents (PDF, DOCX) into Exercise records,
// persists them as text artifacts plus an append-only CSV manifest, and
// derives a JSON course index consumed by the front end.
//
// Ownership model:
//   - The manifest CSV and the per-exercise text artifacts are the durable
//     store.
//   - The JSON course index is a derived, disposable cache that can be rebuilt
//     wholesale from the artifact tree at any time.
package types
