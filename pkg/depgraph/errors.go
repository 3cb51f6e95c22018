package depgraph

import (
	"fmt"
	"strings"
)

// MissingCellError reports a reference to a cell that the dataset does not define.
type MissingCellError struct {
	Cell string
}

func (e *MissingCellError) Error() string {
	return fmt.Sprintf("cell %s is not defined in the dataset", e.Cell)
}

// CircularReferenceError reports a dependency cycle. Chain starts and ends with the
// same cell, e.g. [A1 A2 B3 A1].
type CircularReferenceError struct {
	Chain []string
}

func (e *CircularReferenceError) Error() string {
	return "circular reference: " + strings.Join(e.Chain, " -> ")
}
