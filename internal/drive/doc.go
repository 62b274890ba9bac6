// Package drive is the Google Drive collaborator for the CSV-driven walker.
//
// The walker only depends on the Client interface: resolve a file ID from a
// shared URL, fetch metadata, download to a local path. The production
// implementation wraps the Drive v3 API with an injected politeness rate
// limiter and a bounded LRU metadata cache, so there is no ambient module
// state with an implicit lifecycle.
package drive
