/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// ext.go implements the "evsearch ext" command.

package cmd

import (
	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/spf13/cobra"
)

var (
	extKeywords string
	extMax      uint32
)

var extCmd = &cobra.Command{
	Use:   "ext <extensions>",
	Short: "Search by file extension",
	Long: `Search by a comma-separated extension list, optionally narrowed by
keywords.

  evsearch ext go
  evsearch ext "py,js,ts" -k main`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		r := everything.Extensions{List: args[0], Keywords: extKeywords}
		return runQuery("ext", r, everything.Options{Max: extMax})
	},
}

func init() {
	extCmd.Flags().StringVarP(&extKeywords, "keywords", "k", "", "Keywords to AND with the extension filter")
	extCmd.Flags().Uint32VarP(&extMax, "max", "n", 20, "Maximum results (1-500)")
	rootCmd.AddCommand(extCmd)
}
