// tools_util.go provides helper functions shared by the MCP tool handlers.
//
// Separated to centralise the boilerplate of extracting typed parameters
// from MCP's generic argument map and the common execute-log-render
// sequence every search tool shares.
//
// Design: We use permissive extraction (return default on error) rather
// than strict validation because MCP tools should be forgiving - an LLM
// omitting an optional parameter shouldn't cause cryptic errors. LLMs
// frequently omit optional parameters or provide them in unexpected
// formats; returning sensible defaults keeps the tool usable rather than
// failing with type errors the LLM may struggle to interpret.

package mcp

import (
	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/jpl-au/evsearch/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or cannot be parsed as a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the MCP request arguments.
//
// We access the raw argument map directly because JSON booleans decode as
// Go bool values, so a simple type assertion suffices. Returns the default
// if the parameter is missing or not a boolean, which handles LLMs passing
// "true" (string) instead of true (boolean).
func getBool(req mcp.CallToolRequest, name string, def bool) bool { //nolint:unparam
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt extracts an integer parameter from the MCP request arguments.
//
// JSON numbers decode as float64 in Go's encoding/json, so we type assert
// to float64 first and then convert. Returns the default if the parameter
// is missing or not a number.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// maxArg extracts the max_results cap as a uint32. Negative values map to
// zero; the engine clamps into [1, 500] either way.
func maxArg(req mcp.CallToolRequest, def int) uint32 {
	n := getInt(req, "max_results", def)
	if n < 0 {
		n = 0
	}
	return uint32(n)
}

// runSearch builds the query, executes it, records it in the search
// history, and renders the results. Engine failures come back as MCP
// error results - text the LLM can act on, never a protocol error.
func (h *handlers) runSearch(tool string, req everything.Request, opts everything.Options) (*mcp.CallToolResult, error) {
	query := req.Query()
	set, err := h.engine.Search(query, opts)

	log.Event("mcp:"+tool, "search").Query(query).Results(len(set.Results), int(set.Total)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(everything.FormatResults(set, query)), nil
}
