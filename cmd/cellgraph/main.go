package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cellgraph/cellgraph/pkg/cli"
	"github.com/cellgraph/cellgraph/pkg/console"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(version).ExecuteContext(ctx); err != nil {
		errMsg := strings.TrimRight(err.Error(), "\n")
		// Errors built with the console formatters already carry their prefix
		if !strings.Contains(errMsg, "✗") && !strings.Contains(errMsg, ": error:") {
			errMsg = console.FormatErrorMessage(errMsg)
		}
		fmt.Fprintln(os.Stderr, errMsg)
		stop()
		os.Exit(1)
	}
}
