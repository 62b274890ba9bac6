// Package mcpserver exposes the generated course index over the Model
// Context Protocol so assistants can browse and search the exercise bank.
//
// The server speaks MCP over stdio and registers three tools:
//
//   - list_courses: enumerate indexed courses with their exercise counts
//   - search_exercises: accent- and case-insensitive text search, optionally
//     scoped to one course
//   - get_exercise: fetch a single entry by exercise ID
//
// The index JSON is loaded once at startup and kept in memory; a running
// server does not observe later `exindex index` runs until restarted. The
// server is read-only: it never writes artifacts, manifest rows, or index
// files.
package mcpserver
