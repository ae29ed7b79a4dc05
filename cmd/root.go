/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: Running evsearch with no arguments starts the MCP server rather
// than printing help. MCP clients launch the binary bare, so the default
// action has to be the server; help stays reachable via -h and the guide
// command.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/evsearch/internal/config"
	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/jpl-au/evsearch/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "evsearch",
	Short: "Instant file search via the Everything engine",
	Long: `Search every file and folder on the machine instantly through the
Everything (voidtools) index, as a CLI or as an MCP server for LLMs.

Run with no arguments to start the MCP server over stdio.`,
	RunE: runServe,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens search history logging, executes the command, and closes the log
// before exit. Exit code 1 indicates error.
func Execute(e *everything.Engine, c *config.Config) {
	engine = e
	cfg = c

	// Initialise search history (warn if it fails, but continue)
	if c.LogEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: search history unavailable: %v\n", err)
		}
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
