package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExt(t *testing.T) {
	t.Run("single extension", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("ext", "go")
		assert.Equal(t, "ext:go", env.sdk.Search)
	})

	t.Run("list trims dots and whitespace", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("ext", ".PY, js ,TS")
		assert.Equal(t, "ext:PY | ext:js | ext:TS", env.sdk.Search)
	})

	t.Run("keywords group the alternatives", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("ext", "py,js", "-k", "main")
		assert.Equal(t, "(ext:py | ext:js) main", env.sdk.Search)
	})

	t.Run("max flag", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("ext", "go", "-n", "3")
		assert.Equal(t, uint32(3), env.sdk.Max)
	})
}
