/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// search.go implements the "evsearch search" command.

package cmd

import (
	"strings"

	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/spf13/cobra"
)

var (
	searchMax       uint32
	searchMatchCase bool
	searchRegex     bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search file and folder names",
	Long: `Search file and folder names with Everything query syntax.

  evsearch search report.pdf
  evsearch search "ext:go main"
  evsearch search -r "\.tmp$"

See 'evsearch guide syntax' for the query language.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		r := everything.Basic{Text: strings.Join(args, " ")}
		return runQuery("search", r, everything.Options{
			Max:       searchMax,
			MatchCase: searchMatchCase,
			Regex:     searchRegex,
		})
	},
}

func init() {
	searchCmd.Flags().Uint32VarP(&searchMax, "max", "n", 20, "Maximum results (1-500)")
	searchCmd.Flags().BoolVarP(&searchMatchCase, "case", "c", false, "Case-sensitive matching")
	searchCmd.Flags().BoolVarP(&searchRegex, "regex", "r", false, "Treat the query as a regex")
	rootCmd.AddCommand(searchCmd)
}
