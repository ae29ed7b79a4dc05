package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide")
		env.contains(out, "evsearch")
	})

	t.Run("named page", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide", "syntax")
		env.contains(out, "ext:")
	})

	t.Run("unknown page lists available", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("guide", "bogus")
		assert.ErrorContains(t, err, "Available:")
	})
}
