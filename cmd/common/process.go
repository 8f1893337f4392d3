// Package common contains shared functionality for command handlers
package common

import (
	"fmt"

	sink "fjacquet/ccstmt-csv/internal/common"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"
	"fjacquet/ccstmt-csv/internal/parser"
	"fjacquet/ccstmt-csv/internal/parsererror"
)

// ProcessFile extracts the records of inputFile with p and exports them to
// outputFile. With validate set the PDF must open before extraction starts.
// Nothing is written when extraction fails.
func ProcessFile(p parser.FullParser, exporter sink.Exporter, inputFile, outputFile string, validate bool, log logging.Logger) ([]models.CardRecord, error) {
	if validate {
		log.Debug("Validating format...", logging.Field{Key: logging.FieldInputFile, Value: inputFile})
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return nil, &parsererror.SourceOpenError{FilePath: inputFile, Err: err}
		}
		if !valid {
			return nil, &parsererror.ValidationError{FilePath: inputFile, Reason: "not a readable PDF"}
		}
		log.Debug("Validation successful.")
	}

	records, err := p.ParseFile(inputFile)
	if err != nil {
		return nil, err
	}

	if err := exporter.Export(records, outputFile); err != nil {
		return nil, fmt.Errorf("error writing results: %w", err)
	}

	log.Info("Extraction completed successfully",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

// IsOpenFailure reports whether err means the document itself could not be
// read, as opposed to an empty result or a write failure.
func IsOpenFailure(err error) bool {
	if parsererror.IsSourceOpen(err) {
		return true
	}
	_, ok := err.(*parsererror.ValidationError)
	return ok
}
