package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for postador resources.
	uriScheme = "postador://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "schedule",
		Name:        "schedule",
		Description: "Videos queued for publication",
		MIMEType:    mimeJSON,
	}, s.handleScheduleResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "schedule/{id}",
		Name:        "scheduled-item",
		Description: "A single scheduled video",
		MIMEType:    mimeJSON,
	}, s.handleScheduledItemResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Effective client configuration, secrets masked",
		MIMEType:    mimeJSON,
	}, s.handleSettingsResource)
}

// handleScheduleResource returns every scheduled item.
func (s *Server) handleScheduleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	items, err := s.ports.Scheduling.ListScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled videos: %w", err)
	}

	infos := make([]ScheduledItemOutput, len(items))
	for i := range items {
		infos[i] = itemOutput(items[i])
	}

	return jsonResult(req.Params.URI, infos)
}

// handleScheduledItemResource returns the item named by the URI.
func (s *Server) handleScheduledItemResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractItemID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	items, err := s.ports.Scheduling.ListScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled videos: %w", err)
	}
	for i := range items {
		if items[i].ID == id {
			return jsonResult(req.Params.URI, itemOutput(items[i]))
		}
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// handleSettingsResource returns the effective settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	values := map[string]string{}
	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.List()
		if err != nil {
			return nil, fmt.Errorf("listing settings: %w", err)
		}
		for _, setting := range settings {
			values[setting.Key] = setting.Value
		}
	}
	return jsonResult(req.Params.URI, values)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractItemID extracts the item ID from a URI like postador://schedule/{id}.
func extractItemID(uri string) string {
	const prefix = uriScheme + "schedule/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
