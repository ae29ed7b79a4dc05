/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// history.go implements the "evsearch history" command.

package cmd

import (
	"fmt"
	"time"

	"github.com/jpl-au/evsearch/internal/log"
	"github.com/spf13/cobra"
)

var historyMax int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `Show the most recent searches from the history log, newest first.
Covers both CLI commands and MCP tool calls.

Disable logging with: evsearch config log.enabled false`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		entries, err := log.Recent(historyMax)
		if err != nil {
			return PrintJSONError(fmt.Errorf("read history: %w", err))
		}
		if JSON() {
			return PrintJSON(entries)
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No search history.")
			return nil
		}
		for _, e := range entries {
			ts := time.Unix(e.Start, 0).Format("2006-01-02 15:04:05")
			if !e.Success {
				fmt.Fprintf(out, "%s  %-30s  FAILED  %s\n", ts, e.Source, e.Error)
				continue
			}
			fmt.Fprintf(out, "%s  %-30s  %d/%d  %s\n", ts, e.Source, e.Count, e.Total, e.Query)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyMax, "max", "n", 20, "Maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}
