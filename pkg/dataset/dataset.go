// Package dataset reads cell datasets from disk.
//
// Two formats are supported. The text format has one "CELL: FORMULA" entry per line
// with blank lines and "#" comments ignored. YAML and JSON files hold a mapping from
// cell id to a formula string or a number and are validated against an embedded
// JSON schema.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/logger"
)

var datasetLog = logger.New("dataset:load")

// ErrInvalidDataset is wrapped by every error that describes bad dataset content.
var ErrInvalidDataset = errors.New("invalid dataset")

// Load reads the dataset at path. Files ending in .yaml, .yml or .json are parsed as
// YAML, anything else as the text format.
func Load(path string) (depgraph.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds depgraph.Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		datasetLog.Printf("Loading %s as YAML", path)
		ds, err = ParseYAML(data)
	default:
		datasetLog.Printf("Loading %s as text", path)
		ds, err = ParseText(strings.NewReader(string(data)))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	datasetLog.Printf("Loaded %d cells from %s", len(ds), path)
	return ds, nil
}
