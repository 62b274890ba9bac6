package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aulahub/exindex/internal/indexer"
	"github.com/aulahub/exindex/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeCourseNotFound   = -32001 // Course key not present in the index
	ErrorCodeExerciseNotFound = -32002 // Exercise ID not present in the index
	ErrorCodeEmptyQuery       = -32003 // Query parameter is empty
)

// handleListCourses handles the list_courses tool invocation
func (s *Server) handleListCourses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := make([]string, 0, len(s.index))
	for key := range s.index {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	courses := make([]map[string]interface{}, 0, len(keys))
	for _, key := range keys {
		entries := s.index[key]
		course := map[string]interface{}{
			"course":    key,
			"exercises": len(entries),
		}
		if len(entries) > 0 {
			// The display name as it appeared on disk, before key folding.
			course["display_name"] = entries[0].OriginalCourse
		}
		courses = append(courses, course)
	}

	response := map[string]interface{}{
		"courses":         courses,
		"total_courses":   s.index.Courses(),
		"total_exercises": s.index.Exercises(),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSearchExercises handles the search_exercises tool invocation
func (s *Server) handleSearchExercises(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	limit := getIntDefault(args, "limit", 10)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	course := getStringDefault(args, "course", "")
	scope := s.index
	if course != "" {
		key := indexer.NormalizeCourseKey(course)
		entries, found := s.index[key]
		if !found {
			return nil, newMCPError(ErrorCodeCourseNotFound, "course not found in index", map[string]interface{}{
				"course": course,
				"key":    key,
			})
		}
		scope = types.CourseIndex{key: entries}
	}

	needle := indexer.NormalizeCourseKey(query)
	results := searchIndex(scope, needle, limit)

	response := map[string]interface{}{
		"query":   query,
		"total":   len(results),
		"results": results,
	}
	if course != "" {
		response["course"] = course
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetExercise handles the get_exercise tool invocation
func (s *Server) handleGetExercise(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	id, ok := args["id"].(string)
	if !ok || id == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "id parameter is required", map[string]interface{}{
			"param":  "id",
			"reason": "missing or empty",
		})
	}

	for key, entries := range s.index {
		for _, e := range entries {
			if e.ID == id {
				response := map[string]interface{}{
					"course":   key,
					"exercise": e,
				}
				return mcp.NewToolResultText(formatJSON(response)), nil
			}
		}
	}

	return nil, newMCPError(ErrorCodeExerciseNotFound, "exercise not found in index", map[string]interface{}{
		"id": id,
	})
}

// searchResult is one search hit, trimmed for transport
type searchResult struct {
	Course  string `json:"course"`
	ID      string `json:"id"`
	Number  string `json:"number"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}

const excerptLen = 200

// searchIndex scans entries in deterministic course-key order and matches
// the folded needle against folded title and content
func searchIndex(scope types.CourseIndex, needle string, limit int) []searchResult {
	keys := make([]string, 0, len(scope))
	for key := range scope {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]searchResult, 0, limit)
	for _, key := range keys {
		for _, e := range scope[key] {
			if len(results) >= limit {
				return results
			}
			title := indexer.NormalizeCourseKey(e.Title)
			content := indexer.NormalizeCourseKey(e.Content)
			if !strings.Contains(title, needle) && !strings.Contains(content, needle) {
				continue
			}
			results = append(results, searchResult{
				Course:  key,
				ID:      e.ID,
				Number:  e.Number,
				Title:   e.Title,
				Excerpt: excerpt(e.Content),
			})
		}
	}
	return results
}

// excerpt truncates content to a readable preview
func excerpt(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= excerptLen {
		return content
	}
	return string(runes[:excerptLen]) + "..."
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
