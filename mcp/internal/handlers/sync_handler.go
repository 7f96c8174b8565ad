package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/jelmer/ridewithgps-go/client"
)

// SyncHandler exposes incremental change detection.
type SyncHandler struct {
	client *client.Client
}

func NewSyncHandler(c *client.Client) *SyncHandler { return &SyncHandler{client: c} }

func (sh *SyncHandler) RegisterTools(s *server.MCPServer) error {
	sync := mcp.NewTool("sync_changes",
		mcp.WithDescription("List routes, trips, events and collections changed since a timestamp. "+
			"Pass the returned server_datetime as 'since' on the next call."),
		mcp.WithString("since", mcp.Required(), mcp.Description("ISO-8601 timestamp, e.g. 2024-01-01T00:00:00Z")),
	)
	s.AddTool(sync, sh.handleSync)
	return nil
}

func (sh *SyncHandler) handleSync(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("since")
	if err != nil {
		return mcp.NewToolResultError("since parameter is required"), nil
	}
	since, err := strfmt.ParseDateTime(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("since must be an ISO-8601 timestamp: %v", err)), nil
	}

	start := time.Now()
	res, err := sh.client.GetChangesSince(ctx, time.Time(since))
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("since", raw).Dur("elapsed", elapsed).Msg("sync_changes failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to sync: %v", err)), nil
	}
	log.Debug().Int("items", len(res.Items)).Dur("elapsed", elapsed).Msg("sync_changes succeeded")
	return jsonResult(res)
}
