// Package currencyutils parses the amount strings found in statements.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = regexp.MustCompile(`[€$£¥₹\s]|Rs\.?|INR`)

// ParseAmount parses an amount such as "12345.67", "₹ 12,345.67",
// "12,34,567.89" or "1.234,56" into a decimal.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': empty", amountStr)
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount removes currency markers and thousands separators so the
// result can be parsed by decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	amountStr = currencySymbols.ReplaceAllString(amountStr, "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")
	switch {
	case hasComma && hasDot && strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ","):
		// European format (1.234,56)
		amountStr = strings.ReplaceAll(amountStr, ".", "")
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	case hasComma && !hasDot:
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			// decimal comma (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	default:
		// thousands commas, western or Indian grouping (12,34,567.89)
		amountStr = strings.ReplaceAll(amountStr, ",", "")
	}

	return strings.ReplaceAll(amountStr, "'", "")
}
