package cmd

import (
	"testing"
)

func TestHistory(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		// The history log is never opened in tests, so Recent reports
		// nothing rather than failing.
		env := newTestEnv(t)
		out := env.run("history")
		env.equals(out, "No search history.")
	})

	t.Run("max flag accepted", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("history", "-n", "5")
		env.contains(out, "No search history.")
	})
}
