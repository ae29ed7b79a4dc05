/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// config.go implements the "evsearch config" command.
//
// Design: Config follows a cascade model similar to git: local config
// (.evsearch/config.yaml) takes precedence over global (~/.evsearch/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package cmd

import (
	"fmt"

	"github.com/jpl-au/evsearch/internal/config"
	"github.com/jpl-au/evsearch/internal/log"
	"github.com/spf13/cobra"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "View or set config values",
	Long: `View or set config values.

  evsearch config                          # show config
  evsearch config defaults.max_results     # show one value
  evsearch config defaults.max_results 100 # set a value

Configuration locations:
  Global: ~/.evsearch/config.yaml
  Local:  .evsearch/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var c *config.Config
	var err error
	if configLocal {
		c, err = config.LoadScope(config.ScopeLocal)
	} else {
		c, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if c.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		// Show all values
		for k, v := range c.All() {
			fmt.Fprintf(out, "%s: %s\n", k, v)
		}
		log.Event("cli:config", "config").Write(nil)

	case 1:
		// Get single value
		v, err := c.Get(args[0])
		log.Event("cli:config", "config").Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		fmt.Fprintln(out, v)

	case 2:
		// Set value - write to same place we read from
		if err := c.Set(args[0], args[1]); err != nil {
			log.Event("cli:config", "config").Detail("key", args[0]).Write(err)
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := c.Save()
		log.Event("cli:config", "config").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		fmt.Fprintf(out, "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Use local config (.evsearch/config.yaml)")
	rootCmd.AddCommand(configCmd)
}
