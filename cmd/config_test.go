package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("set and get local value", func(t *testing.T) {
		env := newTestEnv(t)
		t.Chdir(t.TempDir())

		out := env.run("config", "--local", "defaults.max_results", "100")
		env.contains(out, "defaults.max_results = 100 (local)")

		out = env.run("config", "--local", "defaults.max_results")
		env.equals(out, "100")
	})

	t.Run("list shows all keys", func(t *testing.T) {
		env := newTestEnv(t)
		t.Chdir(t.TempDir())

		out := env.run("config", "--local")
		env.contains(out, "engine.library")
		env.contains(out, "defaults.max_results")
		env.contains(out, "log.enabled")
	})

	t.Run("unknown key fails", func(t *testing.T) {
		env := newTestEnv(t)
		t.Chdir(t.TempDir())

		_, err := env.runErr("config", "--local", "bogus.key")
		assert.ErrorContains(t, err, "unknown config key")
	})

	t.Run("out of range value fails", func(t *testing.T) {
		env := newTestEnv(t)
		t.Chdir(t.TempDir())

		_, err := env.runErr("config", "--local", "defaults.max_results", "9000")
		assert.Error(t, err)
	})
}
