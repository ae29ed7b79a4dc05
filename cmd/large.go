/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// large.go implements the "evsearch large" command.

package cmd

import (
	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/spf13/cobra"
)

var (
	largeMin string
	largeMax uint32
)

var largeCmd = &cobra.Command{
	Use:   "large",
	Short: "Find large files",
	Long: `Find files over a minimum size (default 100mb).

  evsearch large
  evsearch large -s 1gb`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		r := everything.LargeFiles{MinSize: largeMin}
		return runQuery("large", r, everything.Options{Max: largeMax})
	},
}

func init() {
	largeCmd.Flags().StringVarP(&largeMin, "size", "s", "100mb", "Minimum file size (e.g. 500mb, 1gb)")
	largeCmd.Flags().Uint32VarP(&largeMax, "max", "n", 20, "Maximum results (1-500)")
	rootCmd.AddCommand(largeCmd)
}
