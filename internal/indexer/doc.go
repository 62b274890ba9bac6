// Package indexer rebuilds the JSON course index from the artifact tree.
//
// Each top-level directory under the output root is a course; every exercise
// text artifact beneath it becomes a lightweight index entry. Course names
// are normalized (diacritics stripped, lowercased, trimmed) into lookup keys
// so "Cálculo I" and "calculo i" resolve to the same entry regardless of
// accent or casing drift between pipeline runs and UI-provided names.
//
// The index is a derived, disposable cache: the output file is fully
// overwritten on every run, no incremental merge. Stale entries disappear
// naturally with the full rebuild.
package indexer
