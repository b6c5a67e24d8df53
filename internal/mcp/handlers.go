package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/portfolio"
)

// agentMeta tags messages sent through the tool.
var agentMeta = contact.Meta{RemoteAddr: "mcp", UserAgent: "folio-mcp"}

// handleGetProfile returns the current profile as indented JSON.
func (s *Server) handleGetProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(s.profiles.Get(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode profile: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleListProjects lists projects, optionally filtered.
func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := portfolio.ProjectFilter{
		Technology:   request.GetString("technology", ""),
		FeaturedOnly: request.GetBool("featured_only", false),
	}

	projects := s.profiles.Get().FilterProjects(filter)
	if len(projects) == 0 {
		return mcp.NewToolResultText("No projects match the given filter."), nil
	}
	return mcp.NewToolResultText(formatProjects(projects)), nil
}

// handleListSkills lists skill groups.
func (s *Server) handleListSkills(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, g := range s.profiles.Get().Skills {
		sb.WriteString(fmt.Sprintf("## %s\n", g.Title))
		for _, sk := range g.Skills {
			if sk.Level > 0 {
				sb.WriteString(fmt.Sprintf("- %s (%d%%)\n", sk.Name, sk.Level))
			} else {
				sb.WriteString(fmt.Sprintf("- %s\n", sk.Name))
			}
		}
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return mcp.NewToolResultText("No skills listed."), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSendMessage validates and submits a contact message.
func (s *Server) handleSendMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sub := contact.Submission{
		Name:    request.GetString("name", ""),
		Email:   request.GetString("email", ""),
		Message: request.GetString("message", ""),
	}

	errs, msg, err := s.contact.Submit(ctx, sub, agentMeta)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to store message: %v", err)), nil
	}
	if !errs.Valid() {
		return mcp.NewToolResultError(formatErrors(errs)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s (id %s, status %s)", contact.SuccessNotice, msg.ID, msg.Status)), nil
}

func formatProjects(projects []portfolio.Project) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d project(s):\n", len(projects)))

	for _, p := range projects {
		sb.WriteString(fmt.Sprintf("\n## %s", p.Title))
		if p.Featured {
			sb.WriteString(" (featured)")
		}
		sb.WriteString("\n")
		sb.WriteString(p.Description)
		sb.WriteString("\n")
		if len(p.Technologies) > 0 {
			sb.WriteString(fmt.Sprintf("Technologies: %s\n", strings.Join(p.Technologies, ", ")))
		}
		if p.GitHub != "" {
			sb.WriteString(fmt.Sprintf("GitHub: %s\n", p.GitHub))
		}
		if p.Demo != "" {
			sb.WriteString(fmt.Sprintf("Demo: %s\n", p.Demo))
		}
	}

	return sb.String()
}

// formatErrors lists failing fields in form order.
func formatErrors(errs contact.Errors) string {
	var sb strings.Builder
	sb.WriteString("The message was not sent:\n")
	for _, f := range contact.Fields {
		if errs.Has(f) {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", f, errs.Message(f)))
		}
	}
	return sb.String()
}
