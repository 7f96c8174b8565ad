package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/jelmer/ridewithgps-go/client"
)

// CollectionHandler exposes collections of routes and trips.
type CollectionHandler struct {
	client *client.Client
}

func NewCollectionHandler(c *client.Client) *CollectionHandler {
	return &CollectionHandler{client: c}
}

func (ch *CollectionHandler) RegisterTools(s *server.MCPServer) error {
	listOpts := append([]mcp.ToolOption{
		mcp.WithDescription("List the user's collections"),
		mcp.WithString("name", mcp.Description("Filter by collection name")),
	}, pageArgs...)

	s.AddTool(mcp.NewTool("list_collections", listOpts...), ch.handleListCollections)
	s.AddTool(mcp.NewTool("get_collection",
		mcp.WithDescription("Get a collection with its routes and trips"),
		idArg("collection"),
	), ch.handleGetCollection)
	s.AddTool(mcp.NewTool("get_pinned_collection",
		mcp.WithDescription("Get the collection the user has pinned"),
	), ch.handleGetPinnedCollection)
	return nil
}

func (ch *CollectionHandler) handleListCollections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, size, err := pageParams(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	params := &client.ListCollectionsParams{Name: optString(req, "name"), Page: page, PageSize: size}

	colls, err := ch.client.ListCollections(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("list_collections failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list collections: %v", err)), nil
	}
	return jsonResult(colls)
}

func (ch *CollectionHandler) handleGetCollection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	coll, err := ch.client.GetCollection(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint64("collection_id", id).Msg("get_collection failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get collection: %v", err)), nil
	}
	return jsonResult(coll)
}

func (ch *CollectionHandler) handleGetPinnedCollection(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coll, err := ch.client.GetPinnedCollection(ctx)
	if err != nil {
		log.Error().Err(err).Msg("get_pinned_collection failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get pinned collection: %v", err)), nil
	}
	return jsonResult(coll)
}
