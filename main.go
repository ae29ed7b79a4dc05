/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/
package main

import (
	"fmt"
	"os"

	"github.com/jpl-au/evsearch/cmd"
	"github.com/jpl-au/evsearch/internal/config"
	"github.com/jpl-au/evsearch/internal/everything"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not take the whole tool down
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		cfg = &config.Config{}
	}

	cmd.Execute(everything.New(cfg.Library()), cfg)
}
