// tools_category.go implements the preset file-type tools (audio, video,
// image, doc, code, archive, exe). All seven share one handler shape: a
// hardcoded extension list plus optional keywords.

package mcp

import (
	"context"

	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// category returns the handler for one preset file-type tool.
func (h *handlers) category(cat everything.Category, tool string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		r := everything.ByCategory{
			Category: cat,
			Keywords: getString(req, "keywords", ""),
		}
		return h.runSearch(tool, r, everything.Options{Max: maxArg(req, h.defaultMax)})
	}
}
