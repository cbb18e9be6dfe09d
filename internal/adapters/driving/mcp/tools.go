package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

// AuthStatusInput is the input schema for the auth_status tool.
type AuthStatusInput struct{}

// AuthStatusOutput is the output schema for the auth_status tool.
type AuthStatusOutput struct {
	State string `json:"state"`
	Label string `json:"label"`
	Error string `json:"error,omitempty"`
}

// AuthenticateInput is the input schema for the authenticate tool.
type AuthenticateInput struct{}

// AuthenticateOutput is the output schema for the authenticate tool.
type AuthenticateOutput struct {
	Message string `json:"message"`
}

// ListScheduledInput is the input schema for the list_scheduled tool.
type ListScheduledInput struct {
	Status string `json:"status,omitempty" jsonschema:"only return items with this status, e.g. agendado or erro"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of items to return (default all)"`
}

// ListScheduledOutput is the output schema for the list_scheduled tool.
type ListScheduledOutput struct {
	Items []ScheduledItemOutput `json:"items"`
	Count int                   `json:"count"`
}

// ScheduledItemOutput represents a single scheduled video.
type ScheduledItemOutput struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ScheduledAt   string `json:"scheduled_at,omitempty"`
	Status        string `json:"status"`
	Platform      string `json:"platform,omitempty"`
	PostedVideoID string `json:"posted_video_id,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// GenerateContentInput is the input schema for the generate_content tool.
type GenerateContentInput struct {
	Summary string `json:"summary" jsonschema:"a short description of what the video is about"`
}

// GenerateContentOutput is the output schema for the generate_content tool.
type GenerateContentOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

// ScheduleVideoInput is the input schema for the schedule_video tool.
type ScheduleVideoInput struct {
	VideoPath   string `json:"video_path" jsonschema:"local path of the video file to upload"`
	Title       string `json:"title" jsonschema:"video title"`
	Description string `json:"description,omitempty" jsonschema:"video description"`
	Tags        string `json:"tags,omitempty" jsonschema:"comma separated tags"`
	Privacy     string `json:"privacy,omitempty" jsonschema:"private, unlisted or public (default private)"`
	Category    string `json:"category,omitempty" jsonschema:"YouTube category ID (default 22)"`
	ScheduledAt string `json:"scheduled_at" jsonschema:"publication time, RFC 3339 or YYYY-MM-DD HH:MM in local time"`
}

// ScheduleVideoOutput is the output schema for the schedule_video tool.
type ScheduleVideoOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Defaults applied to schedule_video requests.
const (
	defaultPrivacy  = "private"
	defaultCategory = "22"
)

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "auth_status",
		Description: "Check whether the scheduling service is reachable and authenticated with YouTube",
	}, s.handleAuthStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "authenticate",
		Description: "Run the scheduling service's YouTube authentication flow",
	}, s.handleAuthenticate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_scheduled",
		Description: "List the videos queued for publication",
	}, s.handleListScheduled)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_content",
		Description: "Generate a title, description and tags for a video from a summary",
	}, s.handleGenerateContent)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "schedule_video",
		Description: "Upload a local video file and schedule it for publication",
	}, s.handleScheduleVideo)
}

// handleAuthStatus reports unreachable services as a state, not an error.
func (s *Server) handleAuthStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ AuthStatusInput,
) (*mcp.CallToolResult, AuthStatusOutput, error) {
	state, err := s.ports.Scheduling.AuthState(ctx)
	out := AuthStatusOutput{State: state.String(), Label: state.Label()}
	if err != nil {
		out.Error = domain.UserMessage(err)
	}
	return nil, out, nil
}

func (s *Server) handleAuthenticate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ AuthenticateInput,
) (*mcp.CallToolResult, AuthenticateOutput, error) {
	msg, err := s.ports.Scheduling.Authenticate(ctx)
	if err != nil {
		return nil, AuthenticateOutput{}, toolError(err)
	}
	return nil, AuthenticateOutput{Message: msg}, nil
}

func (s *Server) handleListScheduled(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListScheduledInput,
) (*mcp.CallToolResult, ListScheduledOutput, error) {
	items, err := s.ports.Scheduling.ListScheduled(ctx)
	if err != nil {
		return nil, ListScheduledOutput{}, toolError(err)
	}

	output := ListScheduledOutput{Items: make([]ScheduledItemOutput, 0, len(items))}
	for i := range items {
		if input.Status != "" && string(items[i].Status) != input.Status {
			continue
		}
		if input.Limit > 0 && len(output.Items) == input.Limit {
			break
		}
		output.Items = append(output.Items, itemOutput(items[i]))
	}
	output.Count = len(output.Items)

	return nil, output, nil
}

func (s *Server) handleGenerateContent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateContentInput,
) (*mcp.CallToolResult, GenerateContentOutput, error) {
	content, err := s.ports.Scheduling.GenerateContent(ctx, input.Summary)
	if err != nil {
		return nil, GenerateContentOutput{}, toolError(err)
	}
	return nil, GenerateContentOutput{
		Title:       content.Title,
		Description: content.Description,
		Tags:        content.Tags,
	}, nil
}

func (s *Server) handleScheduleVideo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScheduleVideoInput,
) (*mcp.CallToolResult, ScheduleVideoOutput, error) {
	at, err := domain.ParseScheduleTime(input.ScheduledAt, s.location())
	if err != nil {
		return nil, ScheduleVideoOutput{}, toolError(err)
	}

	req := domain.ScheduleRequest{
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		Privacy:     orDefault(input.Privacy, defaultPrivacy),
		Category:    orDefault(input.Category, defaultCategory),
		ScheduledAt: at,
		MediaPath:   input.VideoPath,
	}

	receipt, err := s.ports.Scheduling.Schedule(ctx, req)
	if err != nil {
		return nil, ScheduleVideoOutput{}, toolError(err)
	}
	return nil, ScheduleVideoOutput{ID: receipt.ID, Message: receipt.Message}, nil
}

// location is the configured display zone, used for times without an offset.
func (s *Server) location() *time.Location {
	if s.ports.Settings == nil {
		return time.Local
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return time.Local
	}
	loc, err := settings.Location()
	if err != nil {
		return time.Local
	}
	return loc
}

func itemOutput(item domain.ScheduledItem) ScheduledItemOutput {
	out := ScheduledItemOutput{
		ID:            item.ID,
		Title:         item.Title,
		Status:        item.Status.String(),
		Platform:      item.Platform,
		PostedVideoID: item.PostedVideoID,
		ErrorMessage:  item.ErrorMessage,
	}
	if !item.ScheduledAt.IsZero() {
		out.ScheduledAt = item.ScheduledAt.Format(time.RFC3339)
	}
	return out
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
