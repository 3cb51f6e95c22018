// Package console formats user-facing messages, errors, tables and trees for the
// terminal. Styling is applied only when stdout is a terminal and NO_COLOR is unset,
// so redirected output stays plain.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/cellgraph/cellgraph/pkg/tty"
	"github.com/charmbracelet/lipgloss"
)

var consoleLog = logger.New("console:console")

var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#27AE60", Dark: "#50FA7B"})
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2980B9", Dark: "#8BE9FD"})
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#E67E22", Dark: "#FFB86C"})
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D73737", Dark: "#FF5555"})
	verboseStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#6272A4"})
	locationStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8E44AD", Dark: "#BD93F9"})
	lineNumStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#6272A4"})
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#2980B9", Dark: "#8BE9FD"})
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#BDC3C7", Dark: "#44475A"})
)

// isTTY reports whether output should be styled.
func isTTY() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return tty.IsStdoutTerminal()
}

// applyStyle renders text with style on a terminal and returns it unchanged otherwise.
func applyStyle(style lipgloss.Style, text string) string {
	if !isTTY() {
		return text
	}
	return style.Render(text)
}

// FormatSuccessMessage formats a success message
func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatWarningMessage formats a warning message
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatErrorMessage formats an error message
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatVerboseMessage formats a debug-level message shown with --verbose
func FormatVerboseMessage(message string) string {
	return applyStyle(verboseStyle, "» "+message)
}

// FormatErrorWithSuggestions formats an error followed by a list of things to try.
func FormatErrorWithSuggestions(message string, suggestions []string) string {
	var b strings.Builder
	b.WriteString(FormatErrorMessage(message))
	if len(suggestions) == 0 {
		return b.String()
	}
	b.WriteString("\n\nSuggestions:")
	for _, s := range suggestions {
		b.WriteString("\n  • ")
		b.WriteString(s)
	}
	return b.String()
}

// FormatError renders a CompilerError as
//
//	file:line:col: type: message
//	   1 | source line
//	     |     ^
//	hint: ...
//
// The caret is drawn under Position.Column of the context line matching Position.Line.
func FormatError(err CompilerError) string {
	consoleLog.Printf("Formatting %s at %s:%d:%d", err.Type, err.Position.File, err.Position.Line, err.Position.Column)

	var b strings.Builder
	location := fmt.Sprintf("%s:%d:%d:", err.Position.File, err.Position.Line, err.Position.Column)
	b.WriteString(applyStyle(locationStyle, location))
	b.WriteString(" ")
	b.WriteString(applyStyle(typeStyle(err.Type), err.Type+":"))
	b.WriteString(" ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	firstLine := err.Position.Line - len(err.Context) + 1
	for i, line := range err.Context {
		lineNum := firstLine + i
		fmt.Fprintf(&b, "%s %s\n", applyStyle(lineNumStyle, fmt.Sprintf("%4d |", lineNum)), line)
		if lineNum == err.Position.Line && err.Position.Column > 0 {
			gutter := applyStyle(lineNumStyle, "     |")
			caret := applyStyle(typeStyle(err.Type), "^")
			fmt.Fprintf(&b, "%s %s%s\n", gutter, strings.Repeat(" ", err.Position.Column-1), caret)
		}
	}

	if err.Hint != "" {
		b.WriteString(applyStyle(hintStyle, "hint:"))
		b.WriteString(" ")
		b.WriteString(err.Hint)
		b.WriteString("\n")
	}
	return b.String()
}

func typeStyle(errType string) lipgloss.Style {
	switch errType {
	case "warning":
		return warningStyle
	case "info":
		return infoStyle
	default:
		return errorStyle
	}
}
