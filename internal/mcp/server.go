// Package mcp implements the Model Context Protocol server, exposing
// Everything search operations to LLMs. This enables AI assistants to find
// files and folders on the local machine through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Default result caps per tool family. Content search is slow (file
// contents are not indexed) so it defaults low; duplicate scans usually
// want more rows than a name search.
const (
	defaultContentMax   = 20
	defaultDuplicateMax = 100
)

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients.
//
// Design: The server starts successfully even when the Everything DLL is
// unavailable. Tools then return the engine-unavailable error as text,
// which the LLM can relay, rather than the whole server failing with an
// opaque transport error.
func Serve(engine *everything.Engine, defaultMax int) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{engine: engine, defaultMax: defaultMax}

	s := server.NewMCPServer(
		"evsearch",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("evsearch MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the shared engine.
type handlers struct {
	engine     *everything.Engine
	defaultMax int // standard tool result cap, from config
}

// registerTools exposes Everything search operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	// General search
	s.AddTool(
		mcp.NewTool("everything_search",
			mcp.WithDescription("Search files/folders. Supports wildcards, ext:, paths, regex."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
			mcp.WithBoolean("match_case", mcp.Description("Case-sensitive matching")),
			mcp.WithBoolean("whole_word", mcp.Description("Match whole words only")),
			mcp.WithBoolean("regex", mcp.Description("Treat query as a regex")),
			mcp.WithBoolean("match_path", mcp.Description("Match against the full path, not just the name")),
		),
		h.search,
	)

	// Status
	s.AddTool(
		mcp.NewTool("everything_status",
			mcp.WithDescription("Check Everything status"),
		),
		h.status,
	)

	// Extension search
	s.AddTool(
		mcp.NewTool("everything_search_ext",
			mcp.WithDescription("Search by extension(s)"),
			mcp.WithString("extensions", mcp.Required(), mcp.Description("Comma-separated extensions, e.g. 'py,ipynb'")),
			mcp.WithString("keywords", mcp.Description("Keywords to AND-combine with the extension filter")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchExt,
	)

	// Category presets
	registerCategory(s, "everything_search_audio", "Search audio files", h.category(everything.CategoryAudio, "everything_search_audio"))
	registerCategory(s, "everything_search_video", "Search video files", h.category(everything.CategoryVideo, "everything_search_video"))
	registerCategory(s, "everything_search_image", "Search image files", h.category(everything.CategoryImage, "everything_search_image"))
	registerCategory(s, "everything_search_doc", "Search documents", h.category(everything.CategoryDocument, "everything_search_doc"))
	registerCategory(s, "everything_search_code", "Search code files", h.category(everything.CategoryCode, "everything_search_code"))
	registerCategory(s, "everything_search_archive", "Search archives", h.category(everything.CategoryArchive, "everything_search_archive"))
	registerCategory(s, "everything_search_exe", "Search executables", h.category(everything.CategoryExecutable, "everything_search_exe"))

	// Folder scoping
	s.AddTool(
		mcp.NewTool("everything_search_in_folder",
			mcp.WithDescription("Search in folder"),
			mcp.WithString("folder_path", mcp.Required(), mcp.Description("Folder to search in")),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchInFolder,
	)

	s.AddTool(
		mcp.NewTool("everything_search_folders",
			mcp.WithDescription("Search folders only"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchFolders,
	)

	// Date and size filters
	s.AddTool(
		mcp.NewTool("everything_recent",
			mcp.WithDescription("Recently modified files"),
			mcp.WithNumber("days", mcp.Description("Days back (default 1)")),
			mcp.WithString("extension", mcp.Description("Extension filter, e.g. 'log'")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.recent,
	)

	s.AddTool(
		mcp.NewTool("everything_search_date_created",
			mcp.WithDescription("Search by date created"),
			mcp.WithString("date_filter", mcp.Required(), mcp.Description("Date expression: today, thisweek, 2026, jan2026-mar2026...")),
			mcp.WithString("keywords", mcp.Description("Keywords to AND-combine with the date filter")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchDateCreated,
	)

	s.AddTool(
		mcp.NewTool("everything_search_date_modified",
			mcp.WithDescription("Search by date modified"),
			mcp.WithString("date_filter", mcp.Required(), mcp.Description("Date expression: today, thisweek, 2026, jan2026-mar2026...")),
			mcp.WithString("keywords", mcp.Description("Keywords to AND-combine with the date filter")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchDateModified,
	)

	s.AddTool(
		mcp.NewTool("everything_search_size",
			mcp.WithDescription("Search by size"),
			mcp.WithString("size_filter", mcp.Required(), mcp.Description("Size expression: >1gb, 10mb..50mb, gigantic...")),
			mcp.WithString("keywords", mcp.Description("Keywords to AND-combine with the size filter")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchSize,
	)

	s.AddTool(
		mcp.NewTool("everything_search_large",
			mcp.WithDescription("Find large files"),
			mcp.WithString("min_size", mcp.Description("Minimum size (default 100mb)")),
			mcp.WithString("file_type", mcp.Description("Coarse type filter: video, audio, or archive")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchLarge,
	)

	// Special searches
	s.AddTool(
		mcp.NewTool("everything_search_empty",
			mcp.WithDescription("Find empty folders"),
			mcp.WithString("keywords", mcp.Description("Keywords to narrow the search")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchEmpty,
	)

	s.AddTool(
		mcp.NewTool("everything_search_hidden",
			mcp.WithDescription("Search hidden files"),
			mcp.WithString("keywords", mcp.Description("Keywords to narrow the search")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchHidden,
	)

	s.AddTool(
		mcp.NewTool("everything_search_content",
			mcp.WithDescription("Search file contents (SLOW)"),
			mcp.WithString("content", mcp.Required(), mcp.Description("Text to find inside files")),
			mcp.WithString("extensions", mcp.Description("Comma-separated extensions to limit the scan")),
			mcp.WithString("folder", mcp.Description("Folder to limit the scan")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 20)")),
		),
		h.searchContent,
	)

	s.AddTool(
		mcp.NewTool("everything_search_regex",
			mcp.WithDescription("Search with regex"),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Regex pattern")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchRegex,
	)

	s.AddTool(
		mcp.NewTool("everything_find_duplicates",
			mcp.WithDescription("Find duplicates by name"),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Name pattern, e.g. '*.mp3'")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 100)")),
		),
		h.findDuplicates,
	)

	s.AddTool(
		mcp.NewTool("everything_search_exclude",
			mcp.WithDescription("Search with exclusions"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithString("exclude", mcp.Required(), mcp.Description("Comma-separated terms to exclude")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchExclude,
	)

	s.AddTool(
		mcp.NewTool("everything_search_or",
			mcp.WithDescription("Search with OR logic"),
			mcp.WithString("terms", mcp.Required(), mcp.Description("Comma-separated alternatives")),
			mcp.WithString("and_filter", mcp.Description("Filter to AND-combine with every alternative")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		h.searchOr,
	)
}

// registerCategory adds one preset file-type tool. All seven share the
// same parameter shape.
func registerCategory(s *server.MCPServer, name, desc string, handler server.ToolHandlerFunc) {
	s.AddTool(
		mcp.NewTool(name,
			mcp.WithDescription(desc),
			mcp.WithString("keywords", mcp.Description("Keywords to narrow the search")),
			mcp.WithNumber("max_results", mcp.Description("Maximum results (1-500, default 50)")),
		),
		handler,
	)
}
