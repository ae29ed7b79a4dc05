package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		env := newTestEnv(t)
		env.sdk.DBLoaded = true
		env.sdk.Ver = [4]uint32{1, 4, 1, 1026}

		out := env.run("status")
		env.equals(out, "Everything v1.4.1.1026 - Ready")
	})

	t.Run("index not loaded exits non-zero", func(t *testing.T) {
		env := newTestEnv(t)
		env.sdk.DBLoaded = false

		_, err := env.runErr("status")
		assert.ErrorContains(t, err, "Not available")
	})

	t.Run("engine unavailable exits non-zero", func(t *testing.T) {
		env := newTestEnv(t)
		SetEngine(unavailableEngine())

		_, err := env.runErr("status")
		assert.ErrorContains(t, err, "search engine unavailable")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		env.sdk.DBLoaded = true
		env.sdk.Ver = [4]uint32{1, 4, 1, 1026}

		out := env.run("status", "-o", "json")
		env.contains(out, `"ready":true`)
		env.contains(out, `"build":1026`)
	})
}
