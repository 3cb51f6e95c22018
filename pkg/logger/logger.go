// Package logger provides namespaced debug logging controlled by the DEBUG environment variable.
//
// Each file declares its own logger:
//
//	var scanLog = logger.New("cli:scan_command")
//
// Output is written to stderr only when the namespace is enabled. DEBUG accepts a
// comma-separated list of patterns: "*" enables everything, "cli:*" enables a prefix,
// and a leading "-" excludes a namespace ("*,-formula:builder").
// Every line shows the time elapsed since the previous line of the same namespace.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cellgraph/cellgraph/pkg/tty"
)

// palette holds the ANSI colors assigned to namespaces.
var palette = []string{
	"\033[36m", // cyan
	"\033[32m", // green
	"\033[33m", // yellow
	"\033[34m", // blue
	"\033[35m", // magenta
	"\033[31m", // red
}

const colorReset = "\033[0m"

// Logger writes debug lines for one namespace.
type Logger struct {
	namespace string
	enabled   bool
	color     string

	mu      sync.Mutex
	lastLog time.Time
	out     io.Writer
}

// New creates a logger for the given namespace. Whether it is enabled is decided once,
// from DEBUG at creation time.
func New(namespace string) *Logger {
	l := &Logger{
		namespace: namespace,
		enabled:   isEnabled(namespace, os.Getenv("DEBUG")),
	}
	if os.Getenv("DEBUG_COLORS") != "0" && tty.IsStderrTerminal() {
		l.color = palette[namespaceHash(namespace)%uint32(len(palette))]
	}
	return l
}

// Enabled reports whether this logger produces output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf writes a formatted debug line.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print writes a debug line built from args like fmt.Sprint.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprint(args...))
}

func (l *Logger) write(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	var elapsed time.Duration
	if !l.lastLog.IsZero() {
		elapsed = now.Sub(l.lastLog)
	}
	l.lastLog = now

	out := l.out
	if out == nil {
		out = os.Stderr
	}

	ns := l.namespace
	if l.color != "" {
		ns = l.color + ns + colorReset
	}
	fmt.Fprintf(out, "%s %s +%s\n", ns, message, formatElapsed(elapsed))
}

// formatElapsed renders a duration the way the debug npm package does: 0ms, 15ms, 2s, 3m.
func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}

// isEnabled evaluates the DEBUG patterns for a namespace. Exclusions win over inclusions.
func isEnabled(namespace, debugEnv string) bool {
	if debugEnv == "" {
		return false
	}

	enabled := false
	for pattern := range strings.SplitSeq(debugEnv, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if excluded, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, excluded) {
				return false
			}
			continue
		}
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern matches a namespace against a pattern with an optional trailing "*".
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	return namespace == pattern
}

// namespaceHash is FNV-1a, used to pick a stable color per namespace.
func namespaceHash(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
