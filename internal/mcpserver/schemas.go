package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// listCoursesTool returns the tool definition for list_courses
func listCoursesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_courses",
		Description: "List indexed courses and how many exercises each one has",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// searchExercisesTool returns the tool definition for search_exercises
func searchExercisesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_exercises",
		Description: "Search exercise statements by text, optionally scoped to one course. Matching ignores case and accents, so 'integral' finds 'Integrál'",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Text to look for in exercise titles and statements",
				},
				"course": map[string]interface{}{
					"type":        "string",
					"description": "Optional course name to scope the search (accents and case are ignored)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     10,
					"minimum":     1,
					"maximum":     100,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getExerciseTool returns the tool definition for get_exercise
func getExerciseTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_exercise",
		Description: "Fetch a single indexed exercise by its ID",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Exercise ID, e.g. 'calculo_examen_2023_3'",
				},
			},
			Required: []string{"id"},
		},
	}
}
