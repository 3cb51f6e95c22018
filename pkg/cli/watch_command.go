package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/cellgraph/cellgraph/pkg/console"
	"github.com/cellgraph/cellgraph/pkg/dataset"
	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/spf13/cobra"
)

var watchLog = logger.New("cli:watch_command")

// WatchConfig holds configuration for the watch command.
type WatchConfig struct {
	Dataset string
	Workers int
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-scan a dataset whenever it changes",
		Long: `Scan a dataset, then scan it again every time the file is saved.

Press Ctrl+C to stop.

Examples:
  cellgraph watch --dataset cells.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetPath, _ := cmd.Flags().GetString("dataset")
			workers, _ := cmd.Flags().GetInt("workers")
			return RunWatch(cmd.Context(), WatchConfig{Dataset: datasetPath, Workers: workers}, cmd.OutOrStdout())
		},
	}

	addDatasetFlag(cmd)
	cmd.Flags().IntP("workers", "w", runtime.GOMAXPROCS(0), "Number of cells checked concurrently")

	return cmd
}

// RunWatch scans config.Dataset on start and on every change until ctx is cancelled.
func RunWatch(ctx context.Context, config WatchConfig, out io.Writer) error {
	if _, err := loadDataset(config.Dataset, false); err != nil {
		return err
	}

	watcher := dataset.NewWatcher(config.Dataset, func(ds depgraph.Dataset, err error) {
		console.ClearScreen()
		if err != nil {
			fmt.Fprintln(out, console.FormatErrorMessage(err.Error()))
			return
		}
		watchLog.Printf("Dataset changed, scanning %d cells", len(ds))
		if err := writeScanReport(out, config.Dataset, ScanDataset(ds, config.Workers), false); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
		fmt.Fprintln(out, console.FormatInfoMessage("Watching "+config.Dataset+" for changes (Ctrl+C to stop)"))
	})
	return watcher.Run(ctx)
}
