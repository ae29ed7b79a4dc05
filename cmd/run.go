/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// run.go holds the shared execute-log-render sequence for the search
// commands. Command files build a request and pick options; everything
// after that is identical.

package cmd

import (
	"fmt"

	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/jpl-au/evsearch/internal/log"
)

// runQuery builds the query, executes it, records it in the search
// history, and renders the results in the requested output format.
func runQuery(name string, req everything.Request, opts everything.Options) error {
	query := req.Query()
	set, err := engine.Search(query, opts)

	log.Event("cli:"+name, "search").Query(query).Results(len(set.Results), int(set.Total)).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}
	if JSON() {
		return PrintJSON(set)
	}
	fmt.Fprintln(out, everything.FormatResults(set, query))
	return nil
}
