package common

import (
	"bytes"
	"path/filepath"
	"testing"

	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"", ".csv", false},
		{"csv", ".csv", false},
		{"XLSX", ".xlsx", false},
		{"json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			e, err := NewExporter(tt.format, ',', logging.NewMockLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, e.Extension())
			assert.NotEmpty(t, e.ContentType())
		})
	}
}

func TestResultsPath(t *testing.T) {
	csvExp, _ := NewExporter("csv", ',', nil)
	xlsxExp, _ := NewExporter("xlsx", ',', nil)

	assert.Equal(t, filepath.Join("output", "hdfc_results.csv"), ResultsPath("output", "hdfc", csvExp))
	assert.Equal(t, filepath.Join("out", "sbi_results.xlsx"), ResultsPath("out", "sbi", xlsxExp))
}

func TestXLSXExporter_Write(t *testing.T) {
	var buf bytes.Buffer
	e := NewXLSXExporter(logging.NewMockLogger())
	require.NoError(t, e.Write(&buf, sampleRecords()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(DefaultSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.Header(), rows[0])
	assert.Equal(t, sampleRecords()[0].Row(), rows[1])
	assert.Equal(t, "2", rows[2][5])
}

func TestXLSXExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "axis_results.xlsx")
	require.NoError(t, NewXLSXExporter(nil).Export(sampleRecords(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	value, err := f.GetCellValue(DefaultSheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", value)
}
