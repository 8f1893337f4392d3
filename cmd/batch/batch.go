// Package batch handles batch processing of statement PDFs
package batch

import (
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/ccstmt-csv/cmd/root"
	internalbatch "fjacquet/ccstmt-csv/internal/batch"
	"fjacquet/ccstmt-csv/internal/container"
	"fjacquet/ccstmt-csv/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract every statement PDF of a directory",
	Long: `Extract every statement PDF of an input directory, one after the other.

Each <name>.pdf produces <output>/<name>_results.csv. A statement that cannot
be opened or holds no cardholder block is reported and skipped.
-i/-o default to data.directory and output.directory.

Example:
  ccstmt-csv batch -i statements/ -o results/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	appContainer := root.GetContainer()
	if appContainer == nil {
		root.Log.Fatal("Container not initialized")
	}

	if err := Run(appContainer, root.SharedFlags.Input, root.SharedFlags.Output, cmd.OutOrStdout()); err != nil {
		root.Log.WithError(err).Error("Batch processing failed")
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
	}
}

// Run processes inputDir into outputDir and prints one line per statement
// followed by a summary.
func Run(c *container.Container, inputDir, outputDir string, out io.Writer) error {
	cfg := c.GetConfig()
	if inputDir == "" {
		inputDir = cfg.Data.Directory
	}
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}

	processor := internalbatch.NewProcessor(c.GetParser(), c.GetExporter(), c.GetLogger())
	result, err := processor.Run(inputDir, outputDir)
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		name := filepath.Base(f.Input)
		if f.Err != nil {
			_, _ = fmt.Fprintf(out, "Skipped %s: %v\n", name, f.Err)
			continue
		}
		_, _ = fmt.Fprintf(out, "Extracted %d records from %s -> %s\n", len(f.Records), name, f.Output)
	}

	_, _ = fmt.Fprintf(out, "Processed %d of %d statements: %s\n",
		result.Succeeded(), len(result.Files), report.Summarize(result.Records()).String())
	return nil
}
