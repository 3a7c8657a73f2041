// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/economanager/internal/bills"
)

// FormatAmount formats a decimal amount with two places and comma separators.
// e.g., 1234.5 -> "1,234.50"
func FormatAmount(v decimal.Decimal) string {
	v = v.Round(2)
	whole, frac, _ := strings.Cut(v.Abs().StringFixed(2), ".")
	s := groupThousands(whole) + "." + frac
	if v.IsNegative() {
		return "-" + s
	}
	return s
}

// FormatBillAmount renders a bill's stored amount, normalized when it parses
// as a number and verbatim otherwise.
func FormatBillAmount(b bills.Bill) string {
	v, err := b.AmountValue()
	if err != nil {
		return b.Amount
	}
	return FormatAmount(v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

// groupThousands inserts commas into a string of digits.
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMonth turns a "YYYY_MM" key into "Jan 2024". Malformed keys are
// returned unchanged.
func FormatMonth(key string) string {
	t, err := time.Parse(bills.MonthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}

// FormatPaid renders the paid flag as a check mark or blank.
func FormatPaid(b bills.Bill) string {
	if b.Paid() {
		return "✓"
	}
	return ""
}

// FormatShare formats part as a whole-number percentage of whole. It returns
// "" when whole is not positive.
func FormatShare(part, whole decimal.Decimal) string {
	if !whole.IsPositive() {
		return ""
	}
	return part.Mul(decimal.NewFromInt(100)).Div(whole).Round(0).String() + "%"
}
