package mcptool

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abhisek/hairharmony/internal/analysis"
)

// NewServer creates an MCP server with the quiz tools registered.
func NewServer(svc *analysis.Service, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"hairharmony",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	classify := NewClassifyTool(svc)
	s.AddTool(classify.Definition(), classify.Handle)

	questions := NewQuestionsTool()
	s.AddTool(questions.Definition(), questions.Handle)

	return s
}

// ServeStdio serves s over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
