package report

import (
	"bytes"
	"strings"
	"testing"

	"fjacquet/ccstmt-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func records() []models.CardRecord {
	alice := models.CardRecord{
		CardholderName:  "Alice Smith",
		Last4Digits:     "1234",
		StatementPeriod: "Dec 2024",
		PaymentDueDate:  "05-Jan-2025",
		TotalAmountDue:  "12345.67",
		RecordNumber:    1,
	}
	bob := models.NewCardRecord()
	bob.CardholderName = "Bob Jones"
	bob.TotalAmountDue = "890.00"
	bob.RecordNumber = 2

	carol := models.NewCardRecord()
	carol.CardholderName = "Carol Diaz"
	carol.RecordNumber = 3

	return []models.CardRecord{alice, bob, carol}
}

func TestSummarize(t *testing.T) {
	s := Summarize(records())

	assert.Equal(t, 3, s.Records)
	assert.True(t, decimal.RequireFromString("13235.67").Equal(s.TotalDue), s.TotalDue.String())
	assert.Equal(t, 2, s.Incomplete)
	assert.Equal(t, 0, s.Unparsed)
	assert.Equal(t, "2025-01-05", s.EarliestDue)
	assert.Equal(t, "3 records, total amount due 13235.67, 2 incomplete", s.String())
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Records)
	assert.True(t, s.TotalDue.IsZero())
	assert.Equal(t, "0 records, total amount due 0.00, 0 incomplete", s.String())
}

func TestSummarize_EarliestDue(t *testing.T) {
	r := records()
	r[1].PaymentDueDate = "28-Dec-2024"
	r[2].PaymentDueDate = "2024-12-01"

	assert.Equal(t, "2024-12-28", Summarize(r).EarliestDue)
	assert.Empty(t, Summarize(r[2:]).EarliestDue)
}

func TestSummarize_UnparsedAmount(t *testing.T) {
	r := records()[:1]
	r[0].TotalAmountDue = "12.34.56"

	s := Summarize(r)
	assert.Equal(t, 1, s.Unparsed)
	assert.True(t, s.TotalDue.IsZero())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, records())
	out := buf.String()

	for _, h := range models.Header() {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "Alice Smith")
	assert.Contains(t, out, "12345.67")
	assert.Equal(t, 7, strings.Count(out, models.NotFound), out)
}
