package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/jelmer/ridewithgps-go/client"
)

// UserHandler exposes the authenticated user's profile.
type UserHandler struct {
	client *client.Client
}

// NewUserHandler creates a new user handler instance.
func NewUserHandler(client *client.Client) *UserHandler {
	return &UserHandler{
		client: client,
	}
}

// RegisterTools registers the user tools with the MCP server.
func (uh *UserHandler) RegisterTools(s *server.MCPServer) error {
	getCurrentUser := mcp.NewTool("get_current_user",
		mcp.WithDescription("Get the profile of the RideWithGPS user the server is logged in as"),
	)
	s.AddTool(getCurrentUser, uh.handleGetCurrentUser)

	// login and account changes are reserved for the human-facing CLI.
	return nil
}

func (uh *UserHandler) handleGetCurrentUser(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Debug().Msg("handling get_current_user request")

	start := time.Now()
	user, err := uh.client.GetCurrentUser(ctx)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().
			Err(err).
			Dur("elapsed", elapsed).
			Msg("get_current_user failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get current user: %v", err)), nil
	}

	log.Debug().
		Uint64("user_id", user.ID).
		Dur("elapsed", elapsed).
		Msg("get_current_user succeeded")

	return jsonResult(user)
}
