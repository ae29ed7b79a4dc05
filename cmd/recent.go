/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// recent.go implements the "evsearch recent" command.

package cmd

import (
	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/spf13/cobra"
)

var (
	recentDays uint32
	recentExt  string
	recentMax  uint32
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Find recently modified files",
	Long: `Find files modified in the last N days (default 1).

  evsearch recent
  evsearch recent -d 7 -e .log`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		r := everything.Recent{Days: recentDays, Extension: recentExt}
		return runQuery("recent", r, everything.Options{Max: recentMax})
	},
}

func init() {
	recentCmd.Flags().Uint32VarP(&recentDays, "days", "d", 1, "How many days back to look")
	recentCmd.Flags().StringVarP(&recentExt, "ext", "e", "", "Restrict to one extension")
	recentCmd.Flags().Uint32VarP(&recentMax, "max", "n", 20, "Maximum results (1-500)")
	rootCmd.AddCommand(recentCmd)
}
