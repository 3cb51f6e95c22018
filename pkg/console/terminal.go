package console

import (
	"fmt"
	"os"

	"github.com/cellgraph/cellgraph/pkg/tty"
)

// ANSI escape sequences for terminal control
const (
	// ansiClearScreen clears the screen and moves cursor to home position
	ansiClearScreen = "\033[H\033[2J"
)

// ClearScreen clears the terminal screen if stderr is a TTY
func ClearScreen() {
	if tty.IsStderrTerminal() {
		fmt.Fprint(os.Stderr, ansiClearScreen)
	}
}
