// Package parser provides the parser interfaces and shared base behaviour.
package parser

import (
	"fjacquet/ccstmt-csv/internal/logging"
)

// BaseParser carries the logger shared by parser implementations. Embed it:
//
//	type CardParser struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser returns a BaseParser using logger, or an info-level text
// logger when logger is nil.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the logger; nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}
