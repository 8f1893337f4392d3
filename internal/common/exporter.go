package common

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"
)

// Output formats accepted by NewExporter.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Exporter writes a record table to a stream or a file.
type Exporter interface {
	Write(w io.Writer, records []models.CardRecord) error
	Export(records []models.CardRecord, path string) error
	Extension() string
	ContentType() string
}

// NewExporter returns the exporter for format ("" means csv).
func NewExporter(format string, delimiter rune, logger logging.Logger) (Exporter, error) {
	switch strings.ToLower(format) {
	case "", FormatCSV:
		return NewCSVExporter(delimiter, logger), nil
	case FormatXLSX:
		return NewXLSXExporter(logger), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// ResultsPath returns <dir>/<name>_results<ext> for e.
func ResultsPath(dir, name string, e Exporter) string {
	return filepath.Join(dir, name+"_results"+e.Extension())
}
