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

// RouteHandler exposes read access to planned routes.
type RouteHandler struct {
	client *client.Client
}

func NewRouteHandler(c *client.Client) *RouteHandler { return &RouteHandler{client: c} }

func (rh *RouteHandler) RegisterTools(s *server.MCPServer) error {
	listOpts := append([]mcp.ToolOption{
		mcp.WithDescription("List the user's routes; returns one page of results with pagination fields"),
		mcp.WithString("name", mcp.Description("Filter by route name")),
		visibilityArg,
		mcp.WithNumber("min_distance", mcp.Description("Minimum distance in meters")),
		mcp.WithNumber("max_distance", mcp.Description("Maximum distance in meters")),
		mcp.WithNumber("min_elevation_gain", mcp.Description("Minimum elevation gain in meters")),
		mcp.WithNumber("max_elevation_gain", mcp.Description("Maximum elevation gain in meters")),
	}, pageArgs...)
	list := mcp.NewTool("list_routes", listOpts...)

	get := mcp.NewTool("get_route",
		mcp.WithDescription("Get a route including track points, cue sheet, points of interest and photos"),
		idArg("route"),
	)
	polyline := mcp.NewTool("get_route_polyline",
		mcp.WithDescription("Get the encoded polyline of a route"),
		idArg("route"),
	)

	s.AddTool(list, rh.handleListRoutes)
	s.AddTool(get, rh.handleGetRoute)
	s.AddTool(polyline, rh.handleGetRoutePolyline)
	return nil
}

func (rh *RouteHandler) handleListRoutes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, err := distanceFilters(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Interface("params", params).Msg("list_routes invoked")

	start := time.Now()
	routes, err := rh.client.ListRoutes(ctx, (*client.ListRoutesParams)(params))
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_routes failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list routes: %v", err)), nil
	}
	return jsonResult(routes)
}

func (rh *RouteHandler) handleGetRoute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Uint64("route_id", id).Msg("get_route invoked")

	start := time.Now()
	route, err := rh.client.GetRoute(ctx, id)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Uint64("route_id", id).Dur("elapsed", elapsed).Msg("get_route failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get route: %v", err)), nil
	}
	return jsonResult(route)
}

func (rh *RouteHandler) handleGetRoutePolyline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := rh.client.GetRoutePolyline(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint64("route_id", id).Msg("get_route_polyline failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get route polyline: %v", err)), nil
	}
	return jsonResult(p)
}

// distanceFilters reads the filters shared by list_routes and list_trips.
// ListRoutesParams and ListTripsParams have identical layouts.
func distanceFilters(req mcp.CallToolRequest) (*client.ListTripsParams, error) {
	p := &client.ListTripsParams{Name: optString(req, "name")}
	if v := optString(req, "visibility"); v != nil {
		vis := client.Visibility(*v)
		p.Visibility = &vis
	}
	var err error
	if p.MinDistance, err = optFloat(req, "min_distance"); err != nil {
		return nil, err
	}
	if p.MaxDistance, err = optFloat(req, "max_distance"); err != nil {
		return nil, err
	}
	if p.MinElevationGain, err = optFloat(req, "min_elevation_gain"); err != nil {
		return nil, err
	}
	if p.MaxElevationGain, err = optFloat(req, "max_elevation_gain"); err != nil {
		return nil, err
	}
	if p.Page, p.PageSize, err = pageParams(req); err != nil {
		return nil, err
	}
	return p, nil
}
