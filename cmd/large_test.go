package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLarge(t *testing.T) {
	t.Run("default minimum is 100mb", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("large")
		assert.Equal(t, "size:>100mb", env.sdk.Search)
	})

	t.Run("size flag", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("large", "-s", "1gb")
		assert.Equal(t, "size:>1gb", env.sdk.Search)
	})
}
