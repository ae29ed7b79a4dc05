// tools_search.go implements the general-purpose search tools: free-text,
// extension, folder-scoped, regex, boolean combinators, and duplicates.
//
// Handlers only build the request and pick defaults; query construction
// lives in the everything package so it stays testable without a server.

package mcp

import (
	"context"

	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/mark3labs/mcp-go/mcp"
)

// search handles everything_search tool calls.
func (h *handlers) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	opts := everything.Options{
		Max:       maxArg(req, h.defaultMax),
		MatchCase: getBool(req, "match_case", false),
		WholeWord: getBool(req, "whole_word", false),
		Regex:     getBool(req, "regex", false),
		MatchPath: getBool(req, "match_path", false),
	}
	return h.runSearch("everything_search", everything.Basic{Text: query}, opts)
}

// searchExt handles everything_search_ext tool calls.
func (h *handlers) searchExt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	extensions, err := req.RequireString("extensions")
	if err != nil {
		return mcp.NewToolResultError("extensions is required"), nil //nolint:nilerr
	}

	r := everything.Extensions{
		List:     extensions,
		Keywords: getString(req, "keywords", ""),
	}
	return h.runSearch("everything_search_ext", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchInFolder handles everything_search_in_folder tool calls.
func (h *handlers) searchInFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder, err := req.RequireString("folder_path")
	if err != nil {
		return mcp.NewToolResultError("folder_path is required"), nil //nolint:nilerr
	}
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	r := everything.InFolder{Folder: folder, Text: query}
	return h.runSearch("everything_search_in_folder", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchFolders handles everything_search_folders tool calls.
func (h *handlers) searchFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	r := everything.FoldersOnly{Text: query}
	return h.runSearch("everything_search_folders", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchRegex handles everything_search_regex tool calls.
func (h *handlers) searchRegex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	r := everything.Regex{Pattern: pattern}
	return h.runSearch("everything_search_regex", r, everything.Options{
		Max:   maxArg(req, h.defaultMax),
		Regex: true,
	})
}

// findDuplicates handles everything_find_duplicates tool calls.
func (h *handlers) findDuplicates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	r := everything.Duplicates{Pattern: pattern}
	return h.runSearch("everything_find_duplicates", r, everything.Options{Max: maxArg(req, defaultDuplicateMax)})
}

// searchExclude handles everything_search_exclude tool calls.
func (h *handlers) searchExclude(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}
	exclude, err := req.RequireString("exclude")
	if err != nil {
		return mcp.NewToolResultError("exclude is required"), nil //nolint:nilerr
	}

	r := everything.Exclude{Text: query, Terms: exclude}
	return h.runSearch("everything_search_exclude", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchOr handles everything_search_or tool calls.
func (h *handlers) searchOr(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	terms, err := req.RequireString("terms")
	if err != nil {
		return mcp.NewToolResultError("terms is required"), nil //nolint:nilerr
	}

	r := everything.Or{Terms: terms, Filter: getString(req, "and_filter", "")}
	return h.runSearch("everything_search_or", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}
