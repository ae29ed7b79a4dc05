package everything_test

import (
	"testing"

	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/stretchr/testify/assert"
)

func TestFormatResults(t *testing.T) {
	set := everything.ResultSet{
		Total: 344,
		Results: []everything.Result{
			{Path: `C:\docs`, IsDir: true},
			{Path: `C:\docs\report.pdf`},
		},
	}

	got := everything.FormatResults(set, "report")
	want := "Found 344 (showing 2):\n\n" +
		"[DIR] C:\\docs\n" +
		"[FILE] C:\\docs\\report.pdf\n"
	assert.Equal(t, want, got)
}

func TestFormatResultsEmpty(t *testing.T) {
	// Exact text, no header line, no rows.
	got := everything.FormatResults(everything.ResultSet{Total: 0}, "nothing here")
	assert.Equal(t, "No results for: nothing here", got)
}
