package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/cellgraph/cellgraph/pkg/stringutil"
)

var textLog = logger.New("dataset:text")

// ParseText reads "CELL: FORMULA" lines.
func ParseText(r io.Reader) (depgraph.Dataset, error) {
	ds := make(depgraph.Dataset)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cell, f, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected CELL: FORMULA, got %q", ErrInvalidDataset, lineNum, line)
		}
		cell = strings.TrimSpace(cell)
		f = strings.TrimSpace(f)

		if !stringutil.IsCellID(cell) {
			return nil, fmt.Errorf("%w: line %d: invalid cell id %q", ErrInvalidDataset, lineNum, cell)
		}
		if f == "" {
			return nil, fmt.Errorf("%w: line %d: cell %s has no formula", ErrInvalidDataset, lineNum, cell)
		}
		if _, exists := ds[cell]; exists {
			return nil, fmt.Errorf("%w: line %d: cell %s is defined twice", ErrInvalidDataset, lineNum, cell)
		}
		ds[cell] = f
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	textLog.Printf("Parsed %d cells from %d lines", len(ds), lineNum)
	return ds, nil
}

// ReadFormulas returns one formula per non-blank line.
func ReadFormulas(r io.Reader) ([]string, error) {
	var formulas []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			formulas = append(formulas, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read formulas: %w", err)
	}
	return formulas, nil
}
