// Package common provides the record sinks shared by the commands and the
// HTTP server.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/ccstmt-csv/internal/fileutils"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is the CSV field separator used when none is configured.
const DefaultDelimiter = ','

// CSVExporter writes records as CSV with a header row and no index column.
type CSVExporter struct {
	Delimiter rune
	logger    logging.Logger
}

// NewCSVExporter creates a CSVExporter. A zero delimiter means
// DefaultDelimiter.
func NewCSVExporter(delimiter rune, logger logging.Logger) *CSVExporter {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CSVExporter{Delimiter: delimiter, logger: logger}
}

// Extension implements Exporter.
func (e *CSVExporter) Extension() string {
	return ".csv"
}

// ContentType implements Exporter.
func (e *CSVExporter) ContentType() string {
	return "text/csv"
}

// Write marshals records to w.
func (e *CSVExporter) Write(w io.Writer, records []models.CardRecord) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.Delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// Export writes records to path, creating its directory if needed.
func (e *CSVExporter) Export(records []models.CardRecord, path string) error {
	e.logger.Info("Writing records to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(e.Delimiter)})

	file, err := fileutils.CreateFile(path)
	if err != nil {
		e.logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := e.Write(file, records); err != nil {
		e.logger.WithError(err).Error("Failed to marshal records to CSV")
		return err
	}
	return nil
}
