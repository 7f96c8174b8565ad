// Package handlers implements the MCP tools that expose RideWithGPS client
// operations to agents. Every tool returns indented JSON text on success and
// a tool-result error (never a Go error) when the API call fails.
package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// number reads an optional numeric argument. JSON numbers arrive as float64;
// in-process callers may pass Go integers or numeric strings.
func number(req mcp.CallToolRequest, key string) (float64, bool, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case uint64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		return f, err == nil, wrapArg(key, err)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil, wrapArg(key, err)
	default:
		return 0, false, fmt.Errorf("%s must be a number, got %T", key, raw)
	}
}

func wrapArg(key string, err error) error {
	if err != nil {
		return fmt.Errorf("%s must be a number: %w", key, err)
	}
	return nil
}

// requireID reads a mandatory resource ID: a positive integer below 2^64.
func requireID(req mcp.CallToolRequest, key string) (uint64, error) {
	f, ok, err := number(req, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%s parameter is required", key)
	}
	// float64(math.MaxUint64) rounds up to 2^64, which does not fit.
	if f < 1 || f >= math.MaxUint64 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return uint64(f), nil
}

func optFloat(req mcp.CallToolRequest, key string) (*float64, error) {
	f, ok, err := number(req, key)
	if err != nil || !ok {
		return nil, err
	}
	return &f, nil
}

func optUint32(req mcp.CallToolRequest, key string) (*uint32, error) {
	f, ok, err := number(req, key)
	if err != nil || !ok {
		return nil, err
	}
	if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		return nil, fmt.Errorf("%s must be a non-negative integer", key)
	}
	u := uint32(f)
	return &u, nil
}

func optString(req mcp.CallToolRequest, key string) *string {
	if v, ok := req.GetArguments()[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// jsonResult renders v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func idArg(what string) mcp.ToolOption {
	return mcp.WithNumber("id", mcp.Required(), mcp.Description(fmt.Sprintf("Numeric %s ID", what)))
}

// Shared argument definitions.
var (
	pageArgs = []mcp.ToolOption{
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("page_size", mcp.Description("Results per page")),
	}
	visibilityArg = mcp.WithString("visibility",
		mcp.Description("Filter by visibility"),
		mcp.Enum("public", "private", "unlisted"),
	)
)

// pageParams reads the page and page_size arguments.
func pageParams(req mcp.CallToolRequest) (page, size *uint32, err error) {
	if page, err = optUint32(req, "page"); err != nil {
		return nil, nil, err
	}
	if size, err = optUint32(req, "page_size"); err != nil {
		return nil, nil, err
	}
	return page, size, nil
}
