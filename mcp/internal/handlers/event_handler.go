package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/jelmer/ridewithgps-go/client"
)

// EventHandler exposes read access to events. Creating and editing events
// stays with the CLI.
type EventHandler struct {
	client *client.Client
}

func NewEventHandler(c *client.Client) *EventHandler { return &EventHandler{client: c} }

func (eh *EventHandler) RegisterTools(s *server.MCPServer) error {
	listOpts := append([]mcp.ToolOption{
		mcp.WithDescription("List events visible to the user"),
		mcp.WithString("name", mcp.Description("Filter by event name")),
		visibilityArg,
	}, pageArgs...)

	s.AddTool(mcp.NewTool("list_events", listOpts...), eh.handleListEvents)
	s.AddTool(mcp.NewTool("get_event",
		mcp.WithDescription("Get an event including organizers and photos"),
		idArg("event"),
	), eh.handleGetEvent)
	return nil
}

func (eh *EventHandler) handleListEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, size, err := pageParams(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	params := &client.ListEventsParams{Name: optString(req, "name"), Page: page, PageSize: size}
	if v := optString(req, "visibility"); v != nil {
		vis := client.Visibility(*v)
		params.Visibility = &vis
	}

	events, err := eh.client.ListEvents(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("list_events failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list events: %v", err)), nil
	}
	return jsonResult(events)
}

func (eh *EventHandler) handleGetEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ev, err := eh.client.GetEvent(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint64("event_id", id).Msg("get_event failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get event: %v", err)), nil
	}
	return jsonResult(ev)
}
