package common

import (
	"fmt"
	"io"

	"fjacquet/ccstmt-csv/internal/fileutils"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet the records are written to.
const DefaultSheetName = "Records"

// XLSXExporter writes records to a single worksheet with the same columns as
// the CSV output.
type XLSXExporter struct {
	SheetName string
	logger    logging.Logger
}

// NewXLSXExporter creates an XLSXExporter.
func NewXLSXExporter(logger logging.Logger) *XLSXExporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &XLSXExporter{SheetName: DefaultSheetName, logger: logger}
}

func (e *XLSXExporter) Extension() string {
	return ".xlsx"
}

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *XLSXExporter) build(records []models.CardRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", e.SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range models.Header() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(e.SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for r, record := range records {
		row := record.Row()
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			var value interface{} = v
			if c == len(row)-1 {
				value = record.RecordNumber
			}
			if err := f.SetCellValue(e.SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write record %d: %w", record.RecordNumber, err)
			}
		}
	}

	_ = f.SetColWidth(e.SheetName, "A", "A", 28)
	_ = f.SetColWidth(e.SheetName, "B", "B", 14)
	_ = f.SetColWidth(e.SheetName, "C", "C", 30)
	_ = f.SetColWidth(e.SheetName, "D", "E", 18)
	return f, nil
}

// Write encodes the workbook to w.
func (e *XLSXExporter) Write(w io.Writer, records []models.CardRecord) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to XLSX")
	}
	f, err := e.build(records)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing XLSX data: %w", err)
	}
	return nil
}

// Export writes the workbook to path, creating its directory if needed.
func (e *XLSXExporter) Export(records []models.CardRecord, path string) error {
	e.logger.Info("Writing records to XLSX file",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	file, err := fileutils.CreateFile(path)
	if err != nil {
		e.logger.WithError(err).Error("Failed to create XLSX file")
		return fmt.Errorf("error creating XLSX file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return e.Write(file, records)
}
