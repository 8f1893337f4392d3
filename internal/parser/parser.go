package parser

import (
	"io"

	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"
)

// Parser turns a statement into card records. Both methods return
// *parsererror.SourceOpenError when the document cannot be read and
// *parsererror.EmptyResultError when it holds no cardholder block.
type Parser interface {
	Parse(r io.Reader) ([]models.CardRecord, error)
	ParseFile(path string) ([]models.CardRecord, error)
}

// Validator checks that a file is a readable statement before conversion.
type Validator interface {
	ValidateFormat(path string) (bool, error)
}

// LoggerConfigurable lets callers swap a component's logger.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is everything the commands need from a parser.
type FullParser interface {
	Parser
	Validator
	LoggerConfigurable
}
