package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/missionhud/missionhud/client"
)

// ProgressHandler exposes read-only profile and progression tools.
type ProgressHandler struct {
	client *client.Client
}

func NewProgressHandler(c *client.Client) *ProgressHandler {
	return &ProgressHandler{client: c}
}

// RegisterTools registers the progression tools.
func (ph *ProgressHandler) RegisterTools(s *server.MCPServer) error {
	getProgress := mcp.NewTool("get_progress",
		mcp.WithDescription("Get the progression snapshot: level, rank title, XP within the level, streak and today's activity count."),
	)
	s.AddTool(getProgress, ph.handleGetProgress)

	getProfile := mcp.NewTool("get_profile",
		mcp.WithDescription("Get the user profile, including the chosen agent persona."),
	)
	s.AddTool(getProfile, ph.handleGetProfile)

	listEmails := mcp.NewTool("list_emails",
		mcp.WithDescription("List outreach emails (read-only)."),
		mcp.WithString("status", mcp.Description("Email status: draft|scheduled|sent|failed|all")),
	)
	s.AddTool(listEmails, ph.handleListEmails)

	return nil
}

func (ph *ProgressHandler) handleGetProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	g, err := ph.client.GetGamification(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get progression: %v", err)), nil
	}
	return jsonResult(g)
}

func (ph *ProgressHandler) handleGetProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := ph.client.GetProfile(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get profile: %v", err)), nil
	}
	return jsonResult(p)
}

func (ph *ProgressHandler) handleListEmails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := client.EmailFilter{}
	if v, ok := req.GetArguments()["status"].(string); ok {
		f.Status = v
	}
	emails, err := ph.client.ListEmails(ctx, f)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list emails: %v", err)), nil
	}
	return jsonResult(emails)
}

// jsonResult marshals v as an indented tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
