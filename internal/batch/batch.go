// Package batch processes every statement PDF of a directory, one after the
// other, writing one results file per statement.
package batch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/ccstmt-csv/internal/common"
	"fjacquet/ccstmt-csv/internal/fileutils"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"
	"fjacquet/ccstmt-csv/internal/validation"
)

// FileParser extracts the records of one statement file.
type FileParser interface {
	ParseFile(path string) ([]models.CardRecord, error)
}

// ErrOutputConflict marks a statement skipped because an earlier statement of
// the run already wrote the same results file, e.g. HDFC.pdf and hdfc.pdf.
var ErrOutputConflict = errors.New("results file already written by another statement")

// FileResult is the outcome for one statement.
type FileResult struct {
	Input   string
	Output  string
	Records []models.CardRecord
	Err     error
}

// Result is the outcome of a batch run, in input file order.
type Result struct {
	Files []FileResult
}

// Succeeded counts statements whose results were written.
func (r Result) Succeeded() int {
	n := 0
	for _, f := range r.Files {
		if f.Err == nil {
			n++
		}
	}
	return n
}

// Records returns every record written, statement by statement.
func (r Result) Records() []models.CardRecord {
	var all []models.CardRecord
	for _, f := range r.Files {
		all = append(all, f.Records...)
	}
	return all
}

// Processor runs the batch.
type Processor struct {
	parser   FileParser
	exporter common.Exporter
	logger   logging.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(parser FileParser, exporter common.Exporter, logger logging.Logger) *Processor {
	return &Processor{parser: parser, exporter: exporter, logger: logger}
}

// Run processes every *.pdf directly inside inputDir in name order. A
// statement that cannot be opened or holds no records is recorded in the
// result and skipped; only an unreadable input directory fails the run.
func (p *Processor) Run(inputDir, outputDir string) (Result, error) {
	if err := validation.IsValidInputDir(inputDir); err != nil {
		return Result{}, err
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return Result{}, fmt.Errorf("failed to read input directory: %w", err)
	}

	if len(files) == 0 {
		p.logger.Warn("No PDF statements found in input directory",
			logging.Field{Key: logging.FieldFile, Value: inputDir})
		return Result{}, nil
	}

	p.logger.Info("Found statements for processing",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	result := Result{Files: make([]FileResult, 0, len(files))}
	written := make(map[string]string, len(files))
	for _, input := range files {
		name := strings.ToLower(fileutils.BaseName(input))
		fr := FileResult{Input: input, Output: common.ResultsPath(outputDir, name, p.exporter)}

		if prev, ok := written[fr.Output]; ok {
			fr.Err = fmt.Errorf("%w: %s (written for %s)", ErrOutputConflict, filepath.Base(fr.Output), filepath.Base(prev))
		} else {
			fr.Records, fr.Err = p.processOne(fr.Input, fr.Output)
		}

		if fr.Err != nil {
			p.logger.WithError(fr.Err).Warn("Skipping statement",
				logging.Field{Key: logging.FieldInputFile, Value: input})
			fr.Records = nil
		} else {
			written[fr.Output] = input
		}
		result.Files = append(result.Files, fr)
	}

	p.logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: result.Succeeded()})
	return result, nil
}

func (p *Processor) processOne(input, output string) ([]models.CardRecord, error) {
	records, err := p.parser.ParseFile(input)
	if err != nil {
		return nil, err
	}
	if err := p.exporter.Export(records, output); err != nil {
		return nil, fmt.Errorf("error writing results: %w", err)
	}
	return records, nil
}
