//go:build !js && !wasm

package console

import (
	"errors"
	"os"

	"github.com/cellgraph/cellgraph/pkg/tty"
	"github.com/charmbracelet/huh"
)

// IsAccessibleMode reports whether prompts should use huh's accessible mode, which
// replaces the TUI with plain line-based input for screen readers.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != "" || os.Getenv("TERM") == "dumb"
}

// PromptInput shows an interactive single-line input and returns the entered value.
// validate, when non-nil, runs on every change and blocks submission on error.
func PromptInput(title, description, placeholder string, validate func(string) error) (string, error) {
	// Forms need both a terminal to read from and one to draw on
	if !tty.IsStdinTerminal() || !tty.IsStderrTerminal() {
		return "", errors.New("interactive input not available (not a TTY)")
	}

	var value string
	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(input)).WithAccessible(IsAccessibleMode())
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}
