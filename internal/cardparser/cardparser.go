// Package cardparser extracts cardholder records from credit-card statement
// text: it splits the text into one block per cardholder and runs a table of
// field patterns over each block.
package cardparser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"
	"fjacquet/ccstmt-csv/internal/parser"
	"fjacquet/ccstmt-csv/internal/parsererror"
	"fjacquet/ccstmt-csv/internal/pdfparser"
)

// CardParser runs the whole pipeline: text extraction, block splitting,
// field parsing and record assembly. It keeps no state between calls.
type CardParser struct {
	parser.BaseParser
	extractor      pdfparser.PDFExtractor
	fields         *FieldParser
	minBlockLength int
}

var _ parser.FullParser = (*CardParser)(nil)

// NewCardParser wires a CardParser. A nil extractor selects the library
// engine, a nil field parser the built-in pattern table and a non-positive
// minBlockLength the default.
func NewCardParser(logger logging.Logger, extractor pdfparser.PDFExtractor, fields *FieldParser, minBlockLength int) *CardParser {
	if extractor == nil {
		extractor = pdfparser.NewLibraryExtractor()
	}
	if fields == nil {
		fields = NewFieldParser()
	}
	if minBlockLength <= 0 {
		minBlockLength = DefaultMinBlockLength
	}
	return &CardParser{
		BaseParser:     parser.NewBaseParser(logger),
		extractor:      extractor,
		fields:         fields,
		minBlockLength: minBlockLength,
	}
}

// Fields exposes the active field parser.
func (p *CardParser) Fields() *FieldParser {
	return p.fields
}

// ParseText splits already extracted text and assembles its records. source
// is only used in errors and logs.
func (p *CardParser) ParseText(text, source string) ([]models.CardRecord, error) {
	blocks := SplitBlocks(text, p.minBlockLength)
	p.GetLogger().Debug("Split statement text into blocks",
		logging.Field{Key: logging.FieldFile, Value: source},
		logging.Field{Key: logging.FieldBlocks, Value: len(blocks)})

	records, err := Assemble(blocks, p.fields)
	if err != nil {
		var empty *parsererror.EmptyResultError
		if errors.As(err, &empty) {
			empty.Source = source
		}
		return nil, err
	}

	for _, r := range records {
		if !r.Complete() {
			p.GetLogger().Debug("Record has unmatched fields",
				logging.Field{Key: logging.FieldFile, Value: source},
				logging.Field{Key: logging.FieldRecord, Value: r.RecordNumber})
		}
	}
	return records, nil
}

// ParseFile extracts and parses the PDF at path.
func (p *CardParser) ParseFile(path string) ([]models.CardRecord, error) {
	p.GetLogger().Info("Parsing PDF statement",
		logging.Field{Key: logging.FieldFile, Value: path})

	text, err := p.extractor.ExtractText(path)
	if err != nil {
		if !parsererror.IsSourceOpen(err) {
			err = &parsererror.SourceOpenError{FilePath: path, Err: err}
		}
		return nil, err
	}

	records, err := p.ParseText(text, path)
	if err != nil {
		return nil, err
	}

	p.GetLogger().Info("Extracted cardholder records",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

// Parse spools r to a temporary file and parses it like ParseFile. Used for
// uploads and other in-memory sources.
func (p *CardParser) Parse(r io.Reader) ([]models.CardRecord, error) {
	tempFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary PDF file: %w", err)
	}
	tempPath := tempFile.Name()
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			p.GetLogger().WithError(err).Warn("Failed to remove temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempPath})
		}
	}()

	if _, err := io.Copy(tempFile, r); err != nil {
		_ = tempFile.Close()
		return nil, fmt.Errorf("failed to write temporary PDF file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary PDF file: %w", err)
	}

	return p.ParseFile(tempPath)
}

// ValidateFormat reports whether path can be opened as a PDF. It returns an
// error only when the file itself is missing.
func (p *CardParser) ValidateFormat(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		return false, fmt.Errorf("cannot access %s: %w", path, err)
	}
	if _, err := p.extractor.ExtractText(path); err != nil {
		p.GetLogger().WithError(err).Warn("PDF validation failed",
			logging.Field{Key: logging.FieldFile, Value: path})
		return false, nil
	}
	return true, nil
}
