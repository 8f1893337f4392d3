// Package dateutils parses the dates found in statements.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutDueDate is the layout of payment due dates, e.g. 05-Jan-2025.
const DateLayoutDueDate = "2-Jan-2006"

// ParseDueDate parses a payment due date such as "05-Jan-2025" or
// "5-feb-2025".
func ParseDueDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutDueDate, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse due date: %s", dateStr)
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format("2006-01-02")
}
