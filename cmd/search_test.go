package cmd

import (
	"testing"

	"github.com/jpl-au/evsearch/internal/everything/sdktest"
	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	t.Run("basic search", func(t *testing.T) {
		env := newTestEnv(t)
		env.sdk.Rows = []sdktest.Row{
			{Path: `C:\docs\report.pdf`},
			{Path: `C:\docs\archive`, Attr: 0x10},
		}
		env.sdk.Total = 2

		out := env.run("search", "report")
		env.contains(out, "Found 2 (showing 2):")
		env.contains(out, `[FILE] C:\docs\report.pdf`)
		env.contains(out, `[DIR] C:\docs\archive`)
		assert.Equal(t, "report", env.sdk.Search)
	})

	t.Run("multiple args join with spaces", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("search", "ext:go", "main")
		assert.Equal(t, "ext:go main", env.sdk.Search)
	})

	t.Run("no results", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("search", "nothing")
		env.equals(out, "No results for: nothing")
	})

	t.Run("default max is 20", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("search", "x")
		assert.Equal(t, uint32(20), env.sdk.Max)
	})

	t.Run("max flag", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("search", "x", "-n", "5")
		assert.Equal(t, uint32(5), env.sdk.Max)
	})

	t.Run("case and regex flags", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("search", "-c", "-r", `\.tmp$`)
		assert.True(t, env.sdk.MatchCase)
		assert.True(t, env.sdk.Regex)
		assert.Equal(t, `\.tmp$`, env.sdk.Search)
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		env.sdk.Rows = []sdktest.Row{{Path: `C:\a.txt`}}
		env.sdk.Total = 1

		out := env.run("search", "a", "-o", "json")
		env.contains(out, `"total":1`)
		env.contains(out, `"path":"C:\\a.txt"`)
		env.contains(out, `"is_dir":false`)
	})

	t.Run("query failure exits non-zero", func(t *testing.T) {
		env := newTestEnv(t)
		env.sdk.FailCode = 2

		_, err := env.runErr("search", "x")
		assert.ErrorContains(t, err, "Query failed (2)")
	})

	t.Run("requires a query", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("search")
		assert.Error(t, err)
	})
}

func TestSearch_EngineUnavailable(t *testing.T) {
	env := newTestEnv(t)
	SetEngine(unavailableEngine())

	_, err := env.runErr("search", "x")
	assert.ErrorContains(t, err, "search engine unavailable")
}
