// format.go renders decoded result sets as text. Purely presentational.

package everything

import (
	"fmt"
	"strings"
)

// FormatResults renders a result set: a count header and one [DIR]/[FILE]
// line per row, or a fixed no-results message when nothing materialised.
func FormatResults(set ResultSet, query string) string {
	if len(set.Results) == 0 {
		return "No results for: " + query
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d (showing %d):\n\n", set.Total, len(set.Results))
	for _, r := range set.Results {
		marker := "[FILE]"
		if r.IsDir {
			marker = "[DIR]"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, r.Path)
	}
	return b.String()
}
