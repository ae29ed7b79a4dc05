/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// status.go implements the "evsearch status" command.
//
// Design: An unavailable or not-ready engine is a failure from the shell's
// point of view, so both exit 1. Scripts can gate on the exit code before
// running searches.

package cmd

import (
	"errors"
	"fmt"

	"github.com/jpl-au/evsearch/internal/log"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the Everything engine is available",
	Long: `Check whether the Everything engine is loaded and its index is ready.

Exits 0 when ready, 1 when the engine is unavailable or still loading.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		st, err := engine.Status()

		log.Event("cli:status", "status").Write(err)

		if err != nil {
			return PrintJSONError(err)
		}
		if !st.Ready {
			return PrintJSONError(errors.New("Everything - Not available"))
		}
		if JSON() {
			return PrintJSON(st)
		}
		fmt.Fprintf(out, "Everything v%d.%d.%d.%d - Ready\n", st.Major, st.Minor, st.Revision, st.Build)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
