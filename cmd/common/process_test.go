package common

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/ccstmt-csv/internal/cardparser"
	sink "fjacquet/ccstmt-csv/internal/common"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/parsererror"
	"fjacquet/ccstmt-csv/internal/pdfparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statement = `Cardholder Name: Alice Smith
Card Number: XXXX-1234
Payment Due Date: 05-Jan-2025
Total Amount Due: 1,200.00
`

func setup(t *testing.T, text string, extractErr error) (*cardparser.CardParser, sink.Exporter, string, string) {
	t.Helper()
	logger := logging.NewMockLogger()
	p := cardparser.NewCardParser(logger, pdfparser.NewMockPDFExtractor(text, extractErr), nil, 0)
	dir := t.TempDir()
	input := filepath.Join(dir, "hdfc.pdf")
	require.NoError(t, os.WriteFile(input, []byte("%PDF"), 0600))
	return p, sink.NewCSVExporter(',', logger), input, filepath.Join(dir, "output", "hdfc_results.csv")
}

func TestProcessFile_Success(t *testing.T) {
	p, exporter, input, output := setup(t, statement, nil)

	records, err := ProcessFile(p, exporter, input, output, true, logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1200.00", records[0].TotalAmountDue)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Cardholder Name,Last 4 Digits"))
	assert.Contains(t, string(data), "Alice Smith,1234,Not found,05-Jan-2025,1200.00,1")
}

func TestProcessFile_NoRecordsWritesNothing(t *testing.T) {
	p, exporter, input, output := setup(t, "An unrelated document.", nil)

	_, err := ProcessFile(p, exporter, input, output, false, logging.NewMockLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrNoRecords))
	assert.False(t, IsOpenFailure(err))

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessFile_OpenFailures(t *testing.T) {
	t.Run("extraction", func(t *testing.T) {
		p, exporter, input, output := setup(t, "", errors.New("malformed xref"))
		_, err := ProcessFile(p, exporter, input, output, false, logging.NewMockLogger())
		require.Error(t, err)
		assert.True(t, IsOpenFailure(err))
	})

	t.Run("validation", func(t *testing.T) {
		p, exporter, input, output := setup(t, "", errors.New("malformed xref"))
		_, err := ProcessFile(p, exporter, input, output, true, logging.NewMockLogger())
		var verr *parsererror.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, IsOpenFailure(err))
	})

	t.Run("missing file", func(t *testing.T) {
		p, exporter, _, output := setup(t, statement, nil)
		_, err := ProcessFile(p, exporter, "/nonexistent/x.pdf", output, true, logging.NewMockLogger())
		require.Error(t, err)
		assert.True(t, IsOpenFailure(err))
	})
}
