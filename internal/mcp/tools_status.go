// tools_status.go implements the everything_status tool: engine readiness
// and version instead of search results.

package mcp

import (
	"context"

	"github.com/jpl-au/evsearch/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// status handles everything_status tool calls.
func (h *handlers) status(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.engine.Status()

	log.Event("mcp:everything_status", "status").Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(st.String()), nil
}
