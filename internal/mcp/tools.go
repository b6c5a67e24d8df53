package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getProfileTool defines the get_profile MCP tool.
var getProfileTool = mcp.NewTool("get_profile",
	mcp.WithDescription("Get the full portfolio profile as JSON: owner, links, about, skills, projects and contact details."),
)

// listProjectsTool defines the list_projects MCP tool.
var listProjectsTool = mcp.NewTool("list_projects",
	mcp.WithDescription("List portfolio projects with their technologies and links."),
	mcp.WithString("technology",
		mcp.Description("Only include projects using this technology (case-insensitive)"),
	),
	mcp.WithBoolean("featured_only",
		mcp.Description("Only include featured projects"),
	),
)

// listSkillsTool defines the list_skills MCP tool.
var listSkillsTool = mcp.NewTool("list_skills",
	mcp.WithDescription("List skills grouped by category, with proficiency levels where known."),
)

// sendMessageTool defines the send_message MCP tool.
var sendMessageTool = mcp.NewTool("send_message",
	mcp.WithDescription("Send a message to the portfolio owner through the contact form."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Sender name"),
	),
	mcp.WithString("email",
		mcp.Required(),
		mcp.Description("Sender email address"),
	),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("Message body"),
	),
)
