package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/aulahub/exindex/pkg/types"
)

const (
	// ServerName is the MCP server name
	ServerName = "exindex"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server around a loaded course index
type Server struct {
	mcp       *server.MCPServer
	index     types.CourseIndex
	indexPath string
}

// NewServer loads the course index JSON at indexPath and builds an MCP
// server over it
func NewServer(indexPath string) (*Server, error) {
	index, err := loadIndex(indexPath)
	if err != nil {
		return nil, err
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:       mcpServer,
		index:     index,
		indexPath: indexPath,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(listCoursesTool(), s.handleListCourses)
	s.mcp.AddTool(searchExercisesTool(), s.handleSearchExercises)
	s.mcp.AddTool(getExerciseTool(), s.handleGetExercise)
	return nil
}

// loadIndex reads and decodes a course index JSON file
func loadIndex(path string) (types.CourseIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	var index types.CourseIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to decode index file %s: %w", path, err)
	}
	return index, nil
}
