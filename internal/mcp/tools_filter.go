// tools_filter.go implements the filter-driven tools: dates, sizes,
// recency, file contents, and the attribute searches (empty folders,
// hidden files).
//
// Filter expressions pass through to the engine verbatim - the engine
// owns the micro-language, and a malformed expression surfaces as zero
// results rather than a validation error here.

package mcp

import (
	"context"

	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/mark3labs/mcp-go/mcp"
)

// recent handles everything_recent tool calls.
func (h *handlers) recent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := getInt(req, "days", 1)
	if days < 0 {
		days = 1
	}

	r := everything.Recent{
		Days:      uint32(days),
		Extension: getString(req, "extension", ""),
	}
	return h.runSearch("everything_recent", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchDateCreated handles everything_search_date_created tool calls.
func (h *handlers) searchDateCreated(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := req.RequireString("date_filter")
	if err != nil {
		return mcp.NewToolResultError("date_filter is required"), nil //nolint:nilerr
	}

	r := everything.DateCreated{Filter: filter, Keywords: getString(req, "keywords", "")}
	return h.runSearch("everything_search_date_created", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchDateModified handles everything_search_date_modified tool calls.
func (h *handlers) searchDateModified(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := req.RequireString("date_filter")
	if err != nil {
		return mcp.NewToolResultError("date_filter is required"), nil //nolint:nilerr
	}

	r := everything.DateModified{Filter: filter, Keywords: getString(req, "keywords", "")}
	return h.runSearch("everything_search_date_modified", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchSize handles everything_search_size tool calls.
func (h *handlers) searchSize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := req.RequireString("size_filter")
	if err != nil {
		return mcp.NewToolResultError("size_filter is required"), nil //nolint:nilerr
	}

	r := everything.Size{Filter: filter, Keywords: getString(req, "keywords", "")}
	return h.runSearch("everything_search_size", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchLarge handles everything_search_large tool calls.
func (h *handlers) searchLarge(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r := everything.LargeFiles{
		MinSize:  getString(req, "min_size", ""),
		FileType: getString(req, "file_type", ""),
	}
	return h.runSearch("everything_search_large", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchContent handles everything_search_content tool calls.
func (h *handlers) searchContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil //nolint:nilerr
	}

	r := everything.Content{
		Text:       content,
		Extensions: getString(req, "extensions", ""),
		Folder:     getString(req, "folder", ""),
	}
	return h.runSearch("everything_search_content", r, everything.Options{Max: maxArg(req, defaultContentMax)})
}

// searchEmpty handles everything_search_empty tool calls.
func (h *handlers) searchEmpty(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r := everything.EmptyFolders{Keywords: getString(req, "keywords", "")}
	return h.runSearch("everything_search_empty", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}

// searchHidden handles everything_search_hidden tool calls.
func (h *handlers) searchHidden(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r := everything.Hidden{Keywords: getString(req, "keywords", "")}
	return h.runSearch("everything_search_hidden", r, everything.Options{Max: maxArg(req, h.defaultMax)})
}
