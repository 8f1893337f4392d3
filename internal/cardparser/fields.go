package cardparser

import (
	"regexp"
	"strings"

	"fjacquet/ccstmt-csv/internal/models"
)

// PostFunc rewrites a captured value. Returning false rejects the match and
// the next matcher for the field is tried.
type PostFunc func(string) (string, bool)

// Matcher extracts one field from a block: Pattern is searched, capture
// Group is taken and Post, if set, rewrites it.
type Matcher struct {
	Field   models.FieldName
	Pattern *regexp.Regexp
	Expr    string // as written, before Unicode widening
	Group   int
	Post    PostFunc
	// Source names where the matcher came from ("builtin" or a file path).
	Source string
}

// String returns the pattern as written.
func (m Matcher) String() string {
	if m.Expr != "" {
		return m.Expr
	}
	return m.Pattern.String()
}

// Find runs the matcher against block. A match whose capture is empty, such
// as "Statement Period:" closing a block, is still a match and yields "".
func (m Matcher) Find(block string) (string, bool) {
	sub := m.Pattern.FindStringSubmatch(block)
	if sub == nil || m.Group >= len(sub) {
		return "", false
	}
	if m.Post == nil {
		return sub[m.Group], true
	}
	return m.Post(sub[m.Group])
}

var trailingDigits = mustCompilePattern(`(\d{4})$`)

// lastFour keeps the four digits that end a masked card number. The masked
// pattern always ends in four digits; a custom pattern that does not is
// rejected rather than stored empty.
func lastFour(masked string) (string, bool) {
	sub := trailingDigits.FindStringSubmatch(masked)
	if sub == nil {
		return "", false
	}
	return sub[1], true
}

func trimmed(v string) (string, bool) {
	return trimSpace(v), true
}

func stripThousands(amount string) string {
	return strings.ReplaceAll(amount, ",", "")
}

func withoutThousands(amount string) (string, bool) {
	return stripThousands(amount), true
}

// NewMatcher compiles expr with \s and \d matching any Unicode space or
// decimal digit.
func NewMatcher(field models.FieldName, expr string, group int, post PostFunc) (Matcher, error) {
	re, err := compilePattern(expr)
	if err != nil {
		return Matcher{}, err
	}
	return Matcher{Field: field, Pattern: re, Expr: expr, Group: group, Post: post}, nil
}

func mustMatcher(field models.FieldName, expr string, group int, post PostFunc) Matcher {
	m, err := NewMatcher(field, expr, group, post)
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultMatchers returns the built-in pattern table.
func DefaultMatchers() []Matcher {
	return []Matcher{
		mustMatcher(models.FieldCardholderName, `Cardholder\s+Name\s*:\s*(.*)`, 1, trimmed),
		mustMatcher(models.FieldLast4Digits, `XXXX[-\s]*\d{4}`, 0, lastFour),
		mustMatcher(models.FieldStatementPeriod, `(?i:Statement\s+Period|Billing\s+Cycle)\s*:\s*(.*)`, 1, trimmed),
		mustMatcher(models.FieldPaymentDueDate, `(?:Payment\s+Due\s+Date|Payment\s+Due)\s*:\s*(\d{1,2}-[A-Za-z]{3}-\d{4})`, 1, nil),
		mustMatcher(models.FieldTotalAmountDue, `Total\s+Amount\s+Due\s*[:₹$€£\s.]*(\d[\d,]*(?:\.\d{2})?)`, 1, withoutThousands),
	}
}

// FieldParser applies a matcher table to blocks. It is immutable after
// construction and safe for concurrent use.
type FieldParser struct {
	byField map[models.FieldName][]Matcher
}

// NewFieldParser builds a parser from the built-in table followed by extra.
// Built-in matchers are tried first for each field; the first hit wins.
func NewFieldParser(extra ...Matcher) *FieldParser {
	p := &FieldParser{byField: make(map[models.FieldName][]Matcher)}
	for _, m := range DefaultMatchers() {
		m.Source = "builtin"
		p.byField[m.Field] = append(p.byField[m.Field], m)
	}
	for _, m := range extra {
		p.byField[m.Field] = append(p.byField[m.Field], m)
	}
	return p
}

// ParseBlock extracts every field from block. Each field is searched
// independently; unmatched fields hold models.NotFound. RecordNumber is left
// at zero.
func (p *FieldParser) ParseBlock(block string) models.CardRecord {
	record := models.NewCardRecord()
	for _, field := range models.Fields {
		for _, m := range p.byField[field] {
			if value, ok := m.Find(block); ok {
				record.Set(field, value)
				break
			}
		}
	}
	return record
}

// Matchers returns the active table in field order.
func (p *FieldParser) Matchers() []Matcher {
	var out []Matcher
	for _, field := range models.Fields {
		out = append(out, p.byField[field]...)
	}
	return out
}
