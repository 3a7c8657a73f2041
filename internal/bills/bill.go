// Package bills holds the monthly bill model and its CSV file storage.
package bills

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaidDateLayout is the layout of Bill.PaidDate.
const PaidDateLayout = "2006-01-02"

// Literal values of Bill.IsPaid.
const (
	PaidTrue  = "true"
	PaidFalse = "false"
)

// Bill is a single payable record. Fields are stored and written back
// exactly as read; nothing here validates the amount or the date.
type Bill struct {
	Creditor string `json:"creditor" yaml:"creditor"`
	Amount   string `json:"amount" yaml:"amount"`
	IsPaid   string `json:"is_paid" yaml:"is_paid"`
	PaidDate string `json:"paid_date" yaml:"paid_date"`
}

// NewBill returns an unpaid bill with no paid date.
func NewBill(creditor, amount string) Bill {
	return Bill{Creditor: creditor, Amount: amount, IsPaid: PaidFalse}
}

// Paid reports whether IsPaid holds the literal "true".
func (b Bill) Paid() bool {
	return b.IsPaid == PaidTrue
}

// MarkPaid flags the bill as paid on the given day.
func (b *Bill) MarkPaid(on time.Time) {
	b.IsPaid = PaidTrue
	b.PaidDate = on.Format(PaidDateLayout)
}

// MarkUnpaid clears the paid flag and date.
func (b *Bill) MarkUnpaid() {
	b.IsPaid = PaidFalse
	b.PaidDate = ""
}

// ParseAmount parses a bill amount such as "85.50". Surrounding spaces are
// ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", s, err)
	}
	return v, nil
}

// AmountValue parses Amount as a decimal number.
func (b Bill) AmountValue() (decimal.Decimal, error) {
	return ParseAmount(b.Amount)
}

// Validate reports whether every field can be written in the bills file
// format, which has no quoting: separators inside a field would corrupt
// the row on the next load.
func (b Bill) Validate() error {
	fields := []struct{ name, value string }{
		{"creditor", b.Creditor},
		{"amount", b.Amount},
		{"paid flag", b.IsPaid},
		{"paid date", b.PaidDate},
	}
	for _, f := range fields {
		if strings.ContainsAny(f.value, ",\r\n") {
			return fmt.Errorf("%s %q contains a comma or line break: %w", f.name, f.value, ErrParse)
		}
	}
	return nil
}

func (b Bill) fields() []string {
	return []string{b.Creditor, b.Amount, b.IsPaid, b.PaidDate}
}
