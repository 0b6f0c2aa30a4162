package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/highrascal9098/Interview-Prep/internal/orchestrator"
	"github.com/highrascal9098/Interview-Prep/internal/topic"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that lets agents browse and sample the
// configured question banks.
type Server struct {
	registry     *topic.Registry
	loader       orchestrator.TopicLoader
	defaultCount int
	mcp          *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(registry *topic.Registry, l orchestrator.TopicLoader, defaultCount int) *Server {
	s := &Server{
		registry:     registry,
		loader:       l,
		defaultCount: defaultCount,
	}

	s.mcp = server.NewMCPServer(
		"quiz",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listTopicsTool, s.handleListTopics)
	s.mcp.AddTool(sampleQuestionsTool, s.handleSampleQuestions)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
