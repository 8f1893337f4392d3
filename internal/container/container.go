// Package container provides dependency injection for the ccstmt-csv
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/ccstmt-csv/internal/cardparser"
	"fjacquet/ccstmt-csv/internal/common"
	"fjacquet/ccstmt-csv/internal/config"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/pdfparser"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	extractor   pdfparser.PDFExtractor
	parser      *cardparser.CardParser
	exporter    common.Exporter
	csvExporter *common.CSVExporter
}

// Option overrides a dependency before wiring.
type Option func(*options)

type options struct {
	logger    logging.Logger
	extractor pdfparser.PDFExtractor
}

// WithLogger replaces the logger built from the log section.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithExtractor replaces the extractor selected by pdf.engine.
func WithExtractor(extractor pdfparser.PDFExtractor) Option {
	return func(o *options) { o.extractor = extractor }
}

// NewContainer creates and wires all application dependencies:
// config → logger → extractor → field patterns → parser → exporter.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = config.NewLogger(cfg)
	}

	extractor := o.extractor
	if extractor == nil {
		var err error
		extractor, err = pdfparser.NewExtractor(cfg.PDF.Engine)
		if err != nil {
			return nil, fmt.Errorf("failed to create PDF extractor: %w", err)
		}
	}

	extra, err := cardparser.LoadPatternFile(cfg.Parser.PatternsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load field patterns: %w", err)
	}
	fields := cardparser.NewFieldParser(extra...)

	cardParser := cardparser.NewCardParser(logger, extractor, fields, cfg.Parser.MinBlockLength)

	csvExporter := common.NewCSVExporter(cfg.DelimiterRune(), logger)
	exporter, err := common.NewExporter(cfg.Output.Format, cfg.DelimiterRune(), logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldEngine, Value: cfg.PDF.Engine},
		logging.Field{Key: logging.FieldFormat, Value: cfg.Output.Format},
		logging.Field{Key: logging.FieldPattern, Value: len(fields.Matchers())})

	return &Container{
		logger:      logger,
		config:      cfg,
		extractor:   extractor,
		parser:      cardParser,
		exporter:    exporter,
		csvExporter: csvExporter,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetExtractor returns the PDF text extractor.
func (c *Container) GetExtractor() pdfparser.PDFExtractor {
	return c.extractor
}

// GetParser returns the statement parser.
func (c *Container) GetParser() *cardparser.CardParser {
	return c.parser
}

// GetExporter returns the exporter selected by output.format.
func (c *Container) GetExporter() common.Exporter {
	return c.exporter
}

// GetCSVExporter returns a CSV exporter regardless of output.format. The HTTP
// server always offers CSV.
func (c *Container) GetCSVExporter() *common.CSVExporter {
	return c.csvExporter
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
