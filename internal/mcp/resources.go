// resources.go implements MCP resource handlers for guide access.
//
// MCP resources provide read-only access to the embedded guide pages via
// URI schemes, so LLM clients can load the Everything query syntax
// reference into context without spending a tool call.
//
// Design: Resource URIs follow the pattern evsearch://guide/{page}.
// An empty page name resolves to the main guide, mirroring the CLI's
// "guide" command behaviour.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/evsearch/guide"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ErrInvalidURI indicates a malformed resource URI, helping clients debug
// URI construction issues.
var ErrInvalidURI = errors.New("invalid URI")

// registerResources adds URI-based resource access to the guide pages.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"evsearch://guide/{page}",
			"Guide",
			mcp.WithTemplateDescription("Everything query syntax and usage guides"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
}

// readGuide handles evsearch://guide/{page} resource requests.
func (h *handlers) readGuide(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	page, err := parseGuideURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	content, err := guide.Get(page)
	if err != nil {
		available, listErr := guide.List()
		if listErr != nil {
			return nil, listErr
		}
		return nil, fmt.Errorf("guide %q not found. Available: %s", page, strings.Join(available, ", "))
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the page name from a guide URI.
// Supports: evsearch://guide and evsearch://guide/{page}
func parseGuideURI(uri string) (string, error) {
	const prefix = "evsearch://guide"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return strings.Trim(strings.TrimPrefix(uri, prefix), "/"), nil
}
