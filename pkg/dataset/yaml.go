package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var yamlLog = logger.New("dataset:yaml")

//go:embed schemas/dataset_schema.json
var datasetSchemaJSON []byte

const datasetSchemaURL = "https://cellgraph.dev/schemas/dataset.json"

var compileDatasetSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(datasetSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(datasetSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add dataset schema: %w", err)
	}
	return compiler.Compile(datasetSchemaURL)
})

// ParseYAML reads a mapping of cell id to formula. JSON input is accepted as well.
func ParseYAML(data []byte) (depgraph.Dataset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return depgraph.Dataset{}, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		yamlLog.Printf("YAML parse failed: %v", err)
		// colored=false to keep ANSI codes out of errors, inclSource=true for context
		return nil, fmt.Errorf("%w:\n%s", ErrInvalidDataset, yaml.FormatError(err, false, true))
	}

	if err := validateDataset(raw); err != nil {
		return nil, err
	}

	ds := make(depgraph.Dataset, len(raw))
	for cell, value := range raw {
		ds[cell] = fmt.Sprint(value)
	}
	yamlLog.Printf("Parsed %d cells", len(ds))
	return ds, nil
}

func validateDataset(raw map[string]any) error {
	schema, err := compileDatasetSchema()
	if err != nil {
		return err
	}

	// Round trip through JSON so the validator sees plain JSON types
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	if err := schema.Validate(instance); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%w: %s", ErrInvalidDataset, cleanSchemaMessage(ve.Error()))
		}
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return nil
}

// cleanSchemaMessage drops the "jsonschema validation failed with ..." header line.
func cleanSchemaMessage(msg string) string {
	if _, rest, ok := strings.Cut(msg, "\n"); ok {
		msg = rest
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(msg), "- "))
}
