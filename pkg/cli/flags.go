package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// datasetEnvVar supplies the default for --dataset.
const datasetEnvVar = "CELLGRAPH_DATASET"

// addJSONFlag adds the --json flag for machine-readable output.
func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output results in JSON format")
}

// addDatasetFlag adds the --dataset flag, defaulting to $CELLGRAPH_DATASET.
func addDatasetFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("dataset", "d", os.Getenv(datasetEnvVar), "Dataset file (CELL: FORMULA lines, .yaml, .yml or .json); defaults to $"+datasetEnvVar)
}

// isVerbose reads the persistent --verbose flag set on the root command.
func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}
