// Package mcp exposes the portfolio and the contact form to agents over the
// Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/portfolio"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes portfolio tools.
type Server struct {
	profiles *portfolio.Store
	contact  *contact.Service
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(profiles *portfolio.Store, svc *contact.Service) *Server {
	s := &Server{
		profiles: profiles,
		contact:  svc,
	}

	s.mcp = server.NewMCPServer(
		"folio",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(getProfileTool, s.handleGetProfile)
	s.mcp.AddTool(listProjectsTool, s.handleListProjects)
	s.mcp.AddTool(listSkillsTool, s.handleListSkills)
	s.mcp.AddTool(sendMessageTool, s.handleSendMessage)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
