//go:build !integration

package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDataset(t *testing.T) {
	ds := depgraph.Dataset{"A1": "=A2*2", "A2": "=B3", "A3": "2", "B1": "4", "B2": "3", "B3": "=A1+B2"}

	reports := ScanDataset(ds, 4)
	require.Len(t, reports, 6)

	expected := []CellReport{
		{Cell: "A1", Formula: "=A2*2", Dependencies: []string{"A2"}, Circular: true, Chain: []string{"A1", "A2", "B3", "A1"}},
		{Cell: "A2", Formula: "=B3", Dependencies: []string{"B3"}, Circular: true, Chain: []string{"A2", "B3", "A1", "A2"}},
		{Cell: "A3", Formula: "2", Dependencies: []string{}},
		{Cell: "B1", Formula: "4", Dependencies: []string{}},
		{Cell: "B2", Formula: "3", Dependencies: []string{}},
		{Cell: "B3", Formula: "=A1+B2", Dependencies: []string{"A1", "B2"}, Circular: true, Chain: []string{"B3", "A1", "A2", "B3"}},
	}
	assert.Equal(t, expected, reports)
}

func TestScanDataset_ReportsCellErrors(t *testing.T) {
	ds := depgraph.Dataset{"A1": "=B1+", "A2": "=Z9", "A3": "1"}

	reports := ScanDataset(ds, 0)
	require.Len(t, reports, 3)
	assert.Contains(t, reports[0].Error, "malformed formula")
	assert.Equal(t, []string{"Z9"}, reports[1].Dependencies)
	assert.Equal(t, "cell Z9 is not defined in the dataset", reports[1].Error)
	assert.Empty(t, reports[2].Error)
}

func TestScanDataset_WorkerCountsAgree(t *testing.T) {
	ds := depgraph.Dataset{"A1": "=A2/(A2*B1)", "A2": "=A3+B2", "A3": "3", "B1": "A2*B2", "B2": "B3", "B3": "1"}
	assert.Equal(t, ScanDataset(ds, 1), ScanDataset(ds, 8))
}

func TestRunScan_Table(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	path := writeDataset(t, "dataset1.txt", dataset1Text)

	var out bytes.Buffer
	require.NoError(t, RunScan(ScanConfig{Dataset: path, Workers: 2}, &out))

	output := out.String()
	assert.Contains(t, output, "Dataset: "+path)
	assert.Contains(t, output, "A1 -> A2 -> B3 -> A1")
	assert.Contains(t, output, "3 of 6 cells have a circular reference")
	assert.Contains(t, output, "TOTAL", "table should end with a totals row")
	assert.Contains(t, output, "6 cells")
	assert.Contains(t, output, "3 circular")
}

func TestRunScan_NoCycles(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	path := writeDataset(t, "dataset2.txt", dataset2Text)

	var out bytes.Buffer
	require.NoError(t, RunScan(ScanConfig{Dataset: path, Workers: 2}, &out))
	assert.Contains(t, out.String(), "✓ No circular references in 6 cells")
}

func TestRunScan_Empty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	path := writeDataset(t, "empty.txt", "# nothing yet\n")

	var out bytes.Buffer
	require.NoError(t, RunScan(ScanConfig{Dataset: path, Workers: 1}, &out))
	assert.Equal(t, "⚠ Dataset is empty\n", out.String())
}

func TestRunScan_JSON(t *testing.T) {
	path := writeDataset(t, "dataset1.txt", dataset1Text)

	var out bytes.Buffer
	require.NoError(t, RunScan(ScanConfig{Dataset: path, Workers: 3, JSONOutput: true}, &out))

	var summary ScanSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, path, summary.Dataset)
	assert.Equal(t, 3, summary.Circular)
	assert.Equal(t, 0, summary.Errors)
	assert.Len(t, summary.Cells, 6)
}
