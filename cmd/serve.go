/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// serve.go implements the "evsearch serve" command for MCP server operation.
//
// Unlike the other commands that run and exit, serve blocks indefinitely
// handling MCP requests over stdio. The bare "evsearch" invocation runs
// the same function.

package cmd

import (
	"github.com/jpl-au/evsearch/internal/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server",
	Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. Running evsearch with no arguments does the same thing.

See 'evsearch guide mcp' for client configuration.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(engine, cfg.MaxResults())
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
