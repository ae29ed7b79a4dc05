// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack in-process: command parsing -> request builders -> engine -> SDK.
//
// The real SDK needs Windows and a running Everything service, so these
// tests substitute the in-memory SDK double and execute the root command
// directly instead of compiling and shelling out to a binary. Output is
// captured through the package's swappable writer.

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jpl-au/evsearch/internal/config"
	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/jpl-au/evsearch/internal/everything/sdktest"
	"github.com/stretchr/testify/assert"
)

// testEnv holds test environment state.
type testEnv struct {
	t   *testing.T
	sdk *sdktest.SDK
	buf *bytes.Buffer
}

// newTestEnv wires the root command to an in-memory SDK and captures output.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{t: t, sdk: &sdktest.SDK{}, buf: &bytes.Buffer{}}

	SetEngine(env.sdk.Engine())
	SetConfig(&config.Config{})
	SetOut(env.buf)
	resetFlags()

	return env
}

// resetFlags restores flag variables to their defaults. Cobra re-parses
// arguments on every Execute but pflag only writes variables for flags
// actually given, so leftovers from a previous test would leak through.
func resetFlags() {
	output = ""
	searchMax, searchMatchCase, searchRegex = 20, false, false
	extKeywords, extMax = "", 20
	recentDays, recentExt, recentMax = 1, "", 20
	largeMin, largeMax = "100mb", 20
	historyMax = 20
	configLocal = false
	rootCmd.SilenceErrors = false
	rootCmd.SilenceUsage = false
}

// run executes evsearch with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("evsearch %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes evsearch and returns stdout and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	e.buf.Reset()
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return e.buf.String(), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// unavailableEngine returns an engine whose SDK load always fails.
func unavailableEngine() *everything.Engine {
	return everything.NewWithSDK(func() (everything.SDK, error) {
		return nil, errors.New("Everything64.dll not found")
	})
}
