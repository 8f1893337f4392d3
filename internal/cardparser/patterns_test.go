package cardparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/ccstmt-csv/internal/models"
	"fjacquet/ccstmt-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePatternFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadPatternFile_EmptyPath(t *testing.T) {
	matchers, err := LoadPatternFile("")
	assert.NoError(t, err)
	assert.Nil(t, matchers)
}

func TestLoadPatternFile_MissingFile(t *testing.T) {
	_, err := LoadPatternFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPatternFile_ExtendsTable(t *testing.T) {
	path := writePatternFile(t, `patterns:
  - field: payment_due_date
    regex: 'Due\s+By\s*:\s*(\d{2}/\d{2}/\d{4})'
    group: 1
  - field: Total Amount Due
    regex: 'Amount\s+Payable\s*:\s*([\d,]+\.\d{2})'
    group: 1
    strip_commas: true
  - field: cardholder_name
    regex: 'Member\s*:(.*)'
    group: 1
    trim: true
`)

	matchers, err := LoadPatternFile(path)
	require.NoError(t, err)
	require.Len(t, matchers, 3)
	assert.Equal(t, models.FieldPaymentDueDate, matchers[0].Field)
	assert.Equal(t, models.FieldTotalAmountDue, matchers[1].Field)
	assert.Equal(t, path, matchers[2].Source)

	p := NewFieldParser(matchers...)
	got := p.ParseBlock("Member:   Dana Lee  \nDue By: 05/01/2025\nAmount Payable: 1,500.00")
	assert.Equal(t, "Dana Lee", got.CardholderName)
	assert.Equal(t, "05/01/2025", got.PaymentDueDate)
	assert.Equal(t, "1500.00", got.TotalAmountDue)

	assert.Len(t, p.Matchers(), len(models.Fields)+3)
}

func TestLoadPatternFile_BuiltinWins(t *testing.T) {
	path := writePatternFile(t, `patterns:
  - field: cardholder_name
    regex: 'Member\s*:\s*(.*)'
    group: 1
`)
	matchers, err := LoadPatternFile(path)
	require.NoError(t, err)

	got := NewFieldParser(matchers...).ParseBlock("Cardholder Name: Alice\nMember: Someone Else")
	assert.Equal(t, "Alice", got.CardholderName)
}

func TestLoadPatternFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown field", "patterns:\n  - field: balance\n    regex: 'x(y)'\n    group: 1\n", "field"},
		{"bad regex", "patterns:\n  - field: last_4_digits\n    regex: '(\\d{4'\n    group: 1\n", "regex"},
		{"group out of range", "patterns:\n  - field: last_4_digits\n    regex: '(\\d{4})'\n    group: 2\n", "group"},
		{"negative group", "patterns:\n  - field: last_4_digits\n    regex: '(\\d{4})'\n    group: -1\n", "group"},
		{"not yaml", "patterns: [unclosed", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPatternFile(writePatternFile(t, tt.content))
			require.Error(t, err)

			var perr *parsererror.ParseError
			require.True(t, errors.As(err, &perr), err.Error())
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}
