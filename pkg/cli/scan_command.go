package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/cellgraph/cellgraph/pkg/console"
	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/cellgraph/cellgraph/pkg/stringutil"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/cobra"
)

var scanLog = logger.New("cli:scan_command")

// maxFormulaWidth bounds the formula column of the scan table.
const maxFormulaWidth = 40

// ScanConfig holds configuration for the scan command.
type ScanConfig struct {
	Dataset    string
	Workers    int
	JSONOutput bool
	Verbose    bool
}

// CellReport is the scan outcome for one cell.
type CellReport struct {
	Cell         string   `json:"cell"`
	Formula      string   `json:"formula"`
	Dependencies []string `json:"dependencies"`
	Circular     bool     `json:"circular"`
	Chain        []string `json:"chain,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// ScanSummary is the JSON output of the scan command.
type ScanSummary struct {
	Dataset  string       `json:"dataset"`
	Cells    []CellReport `json:"cells"`
	Circular int          `json:"circular"`
	Errors   int          `json:"errors"`
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Check every cell of a dataset for circular references",
		Long: `Check every cell of a dataset for circular references and list its dependencies.

Cells are checked concurrently. A cell whose formula cannot be parsed, or that
references a cell missing from the dataset, is reported without stopping the scan.

Examples:
  cellgraph scan --dataset cells.txt
  cellgraph scan --dataset cells.yaml --workers 4 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetPath, _ := cmd.Flags().GetString("dataset")
			workers, _ := cmd.Flags().GetInt("workers")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			return RunScan(ScanConfig{
				Dataset:    datasetPath,
				Workers:    workers,
				JSONOutput: jsonOutput,
				Verbose:    isVerbose(cmd),
			}, cmd.OutOrStdout())
		},
	}

	addDatasetFlag(cmd)
	addJSONFlag(cmd)
	cmd.Flags().IntP("workers", "w", runtime.GOMAXPROCS(0), "Number of cells checked concurrently")

	return cmd
}

// RunScan executes the scan command.
func RunScan(config ScanConfig, out io.Writer) error {
	ds, err := loadDataset(config.Dataset, config.Verbose)
	if err != nil {
		return err
	}
	reports := ScanDataset(ds, config.Workers)
	return writeScanReport(out, config.Dataset, reports, config.JSONOutput)
}

// ScanDataset checks every cell of ds with at most workers goroutines. Reports are
// returned in cell order.
func ScanDataset(ds depgraph.Dataset, workers int) []CellReport {
	if workers < 1 {
		workers = 1
	}
	cells := ds.Cells()
	scanLog.Printf("Scanning %d cells with %d workers", len(cells), workers)

	mapper := iter.Mapper[string, CellReport]{MaxGoroutines: workers}
	return mapper.Map(cells, func(cell *string) CellReport {
		return scanCell(ds, *cell)
	})
}

func scanCell(ds depgraph.Dataset, cell string) CellReport {
	report := CellReport{Cell: cell, Formula: ds[cell], Dependencies: []string{}}

	deps, err := depgraph.FindDependencies(ds[cell])
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Dependencies = deps

	chain, err := depgraph.FindCircularReference(cell, ds)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Circular = chain != nil
	report.Chain = chain
	return report
}

func writeScanReport(out io.Writer, path string, reports []CellReport, jsonOutput bool) error {
	summary := ScanSummary{Dataset: path, Cells: reports}
	for _, r := range reports {
		if r.Circular {
			summary.Circular++
		}
		if r.Error != "" {
			summary.Errors++
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	}

	if len(reports) == 0 {
		fmt.Fprintln(out, console.FormatWarningMessage("Dataset is empty"))
		return nil
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		status := "no"
		switch {
		case r.Error != "":
			status = "error: " + r.Error
		case r.Circular:
			status = strings.Join(r.Chain, " -> ")
		}
		rows = append(rows, []string{
			r.Cell,
			stringutil.Truncate(r.Formula, maxFormulaWidth),
			strings.Join(r.Dependencies, ", "),
			status,
		})
	}
	fmt.Fprint(out, console.RenderTable(console.TableConfig{
		Title:     "Dataset: " + path,
		Headers:   []string{"Cell", "Formula", "Dependencies", "Circular"},
		Rows:      rows,
		ShowTotal: true,
		TotalRow:  []string{"TOTAL", fmt.Sprintf("%d cells", len(reports)), "", fmt.Sprintf("%d circular", summary.Circular)},
	}))

	switch {
	case summary.Circular > 0:
		fmt.Fprintln(out, console.FormatErrorMessage(fmt.Sprintf("%d of %d cells have a circular reference", summary.Circular, len(reports))))
	case summary.Errors == 0:
		fmt.Fprintln(out, console.FormatSuccessMessage(fmt.Sprintf("No circular references in %d cells", len(reports))))
	}
	if summary.Errors > 0 {
		fmt.Fprintln(out, console.FormatWarningMessage(fmt.Sprintf("%d cells could not be checked", summary.Errors)))
	}
	return nil
}
