// Package report renders extracted records for people: a text table for the
// terminal and a short summary of the run.
package report

import (
	"fmt"

	"fjacquet/ccstmt-csv/internal/currencyutils"
	"fjacquet/ccstmt-csv/internal/dateutils"
	"fjacquet/ccstmt-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Summary aggregates a record table.
type Summary struct {
	Records     int             `json:"records"`
	TotalDue    decimal.Decimal `json:"total_due"`
	Unparsed    int             `json:"unparsed_amounts"`
	Incomplete  int             `json:"incomplete_records"`
	EarliestDue string          `json:"earliest_due,omitempty"`
}

// Summarize counts records, sums every Total Amount Due that parses as a
// number, counts records with at least one unmatched field and finds the
// earliest payment due date (ISO formatted).
func Summarize(records []models.CardRecord) Summary {
	s := Summary{Records: len(records), TotalDue: decimal.Zero}
	for _, r := range records {
		if !r.Complete() {
			s.Incomplete++
		}

		if r.PaymentDueDate != models.NotFound {
			if due, err := dateutils.ParseDueDate(r.PaymentDueDate); err == nil {
				iso := dateutils.ToISODate(due)
				if s.EarliestDue == "" || iso < s.EarliestDue {
					s.EarliestDue = iso
				}
			}
		}

		if r.TotalAmountDue == models.NotFound {
			continue
		}
		amount, err := currencyutils.ParseAmount(r.TotalAmountDue)
		if err != nil {
			s.Unparsed++
			continue
		}
		s.TotalDue = s.TotalDue.Add(amount)
	}
	return s
}

// String formats the summary as one line.
func (s Summary) String() string {
	return fmt.Sprintf("%d records, total amount due %s, %d incomplete",
		s.Records, s.TotalDue.StringFixed(2), s.Incomplete)
}
