// Package extract handles the single-statement extraction command
package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/ccstmt-csv/cmd/common"
	"fjacquet/ccstmt-csv/cmd/root"
	"fjacquet/ccstmt-csv/internal/container"
	sink "fjacquet/ccstmt-csv/internal/common"
	"fjacquet/ccstmt-csv/internal/fileutils"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/parsererror"
	"fjacquet/ccstmt-csv/internal/report"

	"github.com/spf13/cobra"
)

// Banks are the statement names offered by the interactive prompt.
var Banks = []string{"HDFC", "ICICI", "SBI", "AXIS", "KOTAK"}

var bankFlag string

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract [bank]",
	Short: "Extract cardholder records from one statement PDF",
	Long: `Extract cardholder records from one credit-card statement PDF.

The statement is read from <data.directory>/<bank>.pdf unless --input is given
and the records are written to <output.directory>/<bank>_results.csv unless
--output is given. Without a bank argument the command asks for one.

Example:
  ccstmt-csv extract hdfc
  ccstmt-csv extract --bank sbi -o sbi.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  extractFunc,
}

func init() {
	Cmd.Flags().StringVarP(&bankFlag, "bank", "b", "", "Bank name (HDFC, ICICI, SBI, AXIS, KOTAK, ...)")
}

// Options are the inputs of one extraction run.
type Options struct {
	Bank     string
	Input    string
	Output   string
	Validate bool
}

func extractFunc(cmd *cobra.Command, args []string) {
	appContainer := root.GetContainer()
	if appContainer == nil {
		root.Log.Fatal("Container not initialized")
	}

	opts := Options{
		Bank:     bankFlag,
		Input:    root.SharedFlags.Input,
		Output:   root.SharedFlags.Output,
		Validate: root.SharedFlags.Validate,
	}
	if len(args) > 0 {
		opts.Bank = args[0]
	}

	Run(appContainer, opts, cmd.InOrStdin(), cmd.OutOrStdout())
}

// Run performs one extraction and reports the outcome on out. Open failures
// and empty results are reported, not returned: the command always exits
// normally. It returns the number of records written.
func Run(c *container.Container, opts Options, in io.Reader, out io.Writer) int {
	logger := c.GetLogger()
	cfg := c.GetConfig()

	bank := strings.TrimSpace(opts.Bank)
	if bank == "" && opts.Input != "" {
		bank = fileutils.BaseName(opts.Input)
	}
	if bank == "" {
		bank = promptBank(in, out)
	}
	if bank == "" {
		_, _ = fmt.Fprintln(out, "No bank name given.")
		return 0
	}

	inputFile := opts.Input
	if inputFile == "" {
		inputFile = filepath.Join(cfg.Data.Directory, strings.ToLower(bank)+".pdf")
	}
	outputFile := opts.Output
	if outputFile == "" {
		outputFile = sink.ResultsPath(cfg.Output.Directory, strings.ToLower(bank), c.GetExporter())
	}

	logger.Info("Extracting statement",
		logging.Field{Key: logging.FieldBank, Value: bank},
		logging.Field{Key: logging.FieldInputFile, Value: inputFile})

	records, err := common.ProcessFile(c.GetParser(), c.GetExporter(), inputFile, outputFile, opts.Validate, logger)
	switch {
	case err == nil:
	case common.IsOpenFailure(err):
		logger.WithError(err).Debug("Statement could not be opened")
		_, _ = fmt.Fprintf(out, "Error opening PDF: %v\n", unwrapOpen(err))
		return 0
	case errors.Is(err, parsererror.ErrNoRecords):
		_, _ = fmt.Fprintf(out, "No cardholder details found. Check if '%s' is present.\n", parsererror.Marker)
		return 0
	default:
		logger.WithError(err).Error("Extraction failed")
		_, _ = fmt.Fprintf(out, "Error saving results: %v\n", err)
		return 0
	}

	_, _ = fmt.Fprintf(out, "Extracted %d records for %s.\n", len(records), bank)
	_, _ = fmt.Fprintf(out, "Results saved at: %s\n\n", outputFile)
	report.WriteTable(out, records)
	_, _ = fmt.Fprintln(out, report.Summarize(records).String())
	return len(records)
}

// promptBank lists the known banks and reads one line from in.
func promptBank(in io.Reader, out io.Writer) string {
	_, _ = fmt.Fprintln(out, "Credit Card Statement Parser")
	_, _ = fmt.Fprintf(out, "Available banks: %s\n\n", strings.Join(Banks, ", "))
	_, _ = fmt.Fprint(out, "Enter the bank name to process: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		_, _ = fmt.Fprintln(out)
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// unwrapOpen strips the path prefix of an open error so the message shows
// the underlying cause.
func unwrapOpen(err error) error {
	var openErr *parsererror.SourceOpenError
	if errors.As(err, &openErr) && openErr.Err != nil {
		return openErr.Err
	}
	return err
}
