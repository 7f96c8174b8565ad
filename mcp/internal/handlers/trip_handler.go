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

// TripHandler exposes read access to recorded trips.
type TripHandler struct {
	client *client.Client
}

func NewTripHandler(c *client.Client) *TripHandler { return &TripHandler{client: c} }

func (th *TripHandler) RegisterTools(s *server.MCPServer) error {
	listOpts := append([]mcp.ToolOption{
		mcp.WithDescription("List the user's recorded trips; returns one page of results with pagination fields"),
		mcp.WithString("name", mcp.Description("Filter by trip name")),
		visibilityArg,
		mcp.WithNumber("min_distance", mcp.Description("Minimum distance in meters")),
		mcp.WithNumber("max_distance", mcp.Description("Maximum distance in meters")),
		mcp.WithNumber("min_elevation_gain", mcp.Description("Minimum elevation gain in meters")),
		mcp.WithNumber("max_elevation_gain", mcp.Description("Maximum elevation gain in meters")),
	}, pageArgs...)

	s.AddTool(mcp.NewTool("list_trips", listOpts...), th.handleListTrips)
	s.AddTool(mcp.NewTool("get_trip",
		mcp.WithDescription("Get a trip including recorded track points with telemetry, gear and photos"),
		idArg("trip"),
	), th.handleGetTrip)
	s.AddTool(mcp.NewTool("get_trip_polyline",
		mcp.WithDescription("Get the encoded polyline of a trip"),
		idArg("trip"),
	), th.handleGetTripPolyline)
	return nil
}

func (th *TripHandler) handleListTrips(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, err := distanceFilters(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := time.Now()
	trips, err := th.client.ListTrips(ctx, params)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_trips failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list trips: %v", err)), nil
	}
	log.Debug().Int("count", len(trips.Results)).Dur("elapsed", elapsed).Msg("list_trips succeeded")
	return jsonResult(trips)
}

func (th *TripHandler) handleGetTrip(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	trip, err := th.client.GetTrip(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint64("trip_id", id).Msg("get_trip failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get trip: %v", err)), nil
	}
	return jsonResult(trip)
}

func (th *TripHandler) handleGetTripPolyline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := th.client.GetTripPolyline(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint64("trip_id", id).Msg("get_trip_polyline failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get trip polyline: %v", err)), nil
	}
	return jsonResult(p)
}
