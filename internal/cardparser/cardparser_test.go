package cardparser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"
	"fjacquet/ccstmt-csv/internal/parsererror"
	"fjacquet/ccstmt-csv/internal/pdfparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(text string, err error) (*CardParser, *pdfparser.MockPDFExtractor, *logging.MockLogger) {
	logger := logging.NewMockLogger()
	extractor := pdfparser.NewMockPDFExtractor(text, err)
	return NewCardParser(logger, extractor, nil, 0), extractor, logger
}

func TestCardParser_TwoCardholders(t *testing.T) {
	p, extractor, _ := newTestParser(twoCardholders, nil)

	records, err := p.ParseFile("statement.pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"statement.pdf"}, extractor.Calls)

	assert.Equal(t, []models.CardRecord{
		{
			CardholderName:  "Alice Smith",
			Last4Digits:     "1234",
			StatementPeriod: "01-Dec-2024 to 31-Dec-2024",
			PaymentDueDate:  "05-Jan-2025",
			TotalAmountDue:  "12345.67",
			RecordNumber:    1,
		},
		{
			CardholderName:  "Bob Jones",
			Last4Digits:     "5678",
			StatementPeriod: "01-Dec-2024 to 31-Dec-2024",
			PaymentDueDate:  "10-Jan-2025",
			TotalAmountDue:  "890.00",
			RecordNumber:    2,
		},
	}, records)
}

func TestCardParser_Idempotent(t *testing.T) {
	p, _, _ := newTestParser(twoCardholders, nil)

	first, err := p.ParseFile("statement.pdf")
	require.NoError(t, err)
	second, err := p.ParseFile("statement.pdf")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCardParser_NoMarkerShortText(t *testing.T) {
	p, _, _ := newTestParser("Thank you for banking with us.", nil)

	records, err := p.ParseFile("empty.pdf")
	assert.Nil(t, records)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrNoRecords))

	var empty *parsererror.EmptyResultError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "empty.pdf", empty.Source)
}

func TestCardParser_NoTextAtAll(t *testing.T) {
	p, _, _ := newTestParser("", nil)
	_, err := p.ParseFile("scanned.pdf")
	assert.True(t, errors.Is(err, parsererror.ErrNoRecords))
}

func TestCardParser_IncompleteRecordIsStillEmitted(t *testing.T) {
	p, _, logger := newTestParser("Cardholder Name: Carol Diaz, no other details on this page", nil)

	records, err := p.ParseFile("partial.pdf")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Carol Diaz, no other details on this page", records[0].CardholderName)
	assert.Equal(t, models.NotFound, records[0].Last4Digits)
	assert.True(t, logger.HasEntry("DEBUG", "Record has unmatched fields"))
}

func TestCardParser_ExtractorErrors(t *testing.T) {
	t.Run("plain error is wrapped", func(t *testing.T) {
		cause := errors.New("not a PDF")
		p, _, _ := newTestParser("", cause)

		_, err := p.ParseFile("bad.pdf")
		require.Error(t, err)
		var openErr *parsererror.SourceOpenError
		require.True(t, errors.As(err, &openErr))
		assert.Equal(t, "bad.pdf", openErr.FilePath)
		assert.True(t, errors.Is(err, cause))
		assert.False(t, errors.Is(err, parsererror.ErrNoRecords))
	})

	t.Run("source open error is kept", func(t *testing.T) {
		orig := &parsererror.SourceOpenError{FilePath: "orig.pdf", Err: errors.New("boom")}
		p, _, _ := newTestParser("", orig)

		_, err := p.ParseFile("bad.pdf")
		var openErr *parsererror.SourceOpenError
		require.True(t, errors.As(err, &openErr))
		assert.Equal(t, "orig.pdf", openErr.FilePath)
	})
}

func TestCardParser_ParseReader(t *testing.T) {
	p, extractor, _ := newTestParser(twoCardholders, nil)

	records, err := p.Parse(strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	require.Len(t, extractor.Calls, 1)
	spooled := extractor.Calls[0]
	assert.True(t, strings.HasPrefix(filepath.Base(spooled), "statement-"))
	assert.Equal(t, ".pdf", filepath.Ext(spooled))

	_, statErr := os.Stat(spooled)
	assert.True(t, os.IsNotExist(statErr), "temporary file must be removed")
}

func TestCardParser_ValidateFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0600))

	t.Run("readable", func(t *testing.T) {
		p, _, _ := newTestParser("text", nil)
		ok, err := p.ValidateFormat(path)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unreadable", func(t *testing.T) {
		p, _, logger := newTestParser("", errors.New("broken xref"))
		ok, err := p.ValidateFormat(path)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, logger.HasEntry("WARN", "PDF validation failed"))
	})

	t.Run("missing", func(t *testing.T) {
		p, _, _ := newTestParser("text", nil)
		ok, err := p.ValidateFormat(filepath.Join(dir, "missing.pdf"))
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestNewCardParser_Defaults(t *testing.T) {
	p := NewCardParser(nil, nil, nil, -1)
	assert.NotNil(t, p.GetLogger())
	assert.NotNil(t, p.Fields())
	assert.Equal(t, DefaultMinBlockLength, p.minBlockLength)
	_, isLibrary := p.extractor.(*pdfparser.LibraryExtractor)
	assert.True(t, isLibrary)
}
