//go:build !integration

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptInput(t *testing.T) {
	t.Run("function signature", func(t *testing.T) {
		_ = PromptInput
	})

	t.Run("errors without a terminal", func(t *testing.T) {
		_, err := PromptInput("Formula", "Enter a formula", "=A1+B1", nil)
		// Will error in test environment (no TTY), but that's expected
		require.Error(t, err, "Should error when not in TTY")
		assert.Contains(t, err.Error(), "not a TTY", "Error should mention TTY")
	})
}

func TestIsAccessibleMode(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")

	t.Setenv("ACCESSIBLE", "")
	assert.False(t, IsAccessibleMode())

	t.Setenv("ACCESSIBLE", "1")
	assert.True(t, IsAccessibleMode())

	t.Setenv("ACCESSIBLE", "")
	t.Setenv("TERM", "dumb")
	assert.True(t, IsAccessibleMode())
}

func TestClearScreen(t *testing.T) {
	assert.NotPanics(t, ClearScreen)
}
