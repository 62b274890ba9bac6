// Package walker drives the extraction pipeline over its two source modes:
// a recursive local-directory walk, or a CSV-driven walk of Drive-hosted
// files downloaded to a temp path, processed, and deleted.
//
// Processing is strictly sequential: one file or CSV row at a time, in
// traversal order. No retry, no backoff, no concurrency. Per-file failures
// are logged and counted; nothing short of process termination stops a run.
package walker
