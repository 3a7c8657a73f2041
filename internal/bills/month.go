package bills

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthKeyLayout formats a time as a month key, e.g. "2024_03".
const MonthKeyLayout = "2006_01"

// MonthKey returns the "YYYY_MM" key of t.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// ValidMonthKey reports whether key is a zero-padded "YYYY_MM" month.
func ValidMonthKey(key string) bool {
	if len(key) != len(MonthKeyLayout) {
		return false
	}
	_, err := time.Parse(MonthKeyLayout, key)
	return err == nil
}

// Month is the ordered collection of bills for one calendar month.
// Insertion order is display and storage order.
type Month struct {
	date  string
	bills []Bill
}

// NewMonth returns an empty month for key. The key is not validated here;
// Tracker.AddBillMonth refuses malformed keys.
func NewMonth(key string, bills ...Bill) *Month {
	m := &Month{date: key}
	m.bills = append(m.bills, bills...)
	return m
}

// Date returns the month's "YYYY_MM" key.
func (m *Month) Date() string { return m.date }

// BillCount returns the number of bills.
func (m *Month) BillCount() int { return len(m.bills) }

// AddBill appends b.
func (m *Month) AddBill(b Bill) {
	m.bills = append(m.bills, b)
}

// RemoveBill removes the bill at ix, shifting later bills down.
func (m *Month) RemoveBill(ix int) error {
	if err := checkIndex(ix, len(m.bills)); err != nil {
		return fmt.Errorf("remove bill from %s: %w", m.date, err)
	}
	m.bills = append(m.bills[:ix], m.bills[ix+1:]...)
	return nil
}

// GetBill returns a copy of the bill at ix.
func (m *Month) GetBill(ix int) (Bill, error) {
	if err := checkIndex(ix, len(m.bills)); err != nil {
		return Bill{}, fmt.Errorf("get bill from %s: %w", m.date, err)
	}
	return m.bills[ix], nil
}

// SetBill replaces the bill at ix.
func (m *Month) SetBill(ix int, b Bill) error {
	if err := checkIndex(ix, len(m.bills)); err != nil {
		return fmt.Errorf("set bill in %s: %w", m.date, err)
	}
	m.bills[ix] = b
	return nil
}

// UpdateBill applies fn to the bill at ix in place. The pointer passed to
// fn must not be retained after fn returns.
func (m *Month) UpdateBill(ix int, fn func(*Bill)) error {
	if err := checkIndex(ix, len(m.bills)); err != nil {
		return fmt.Errorf("update bill in %s: %w", m.date, err)
	}
	fn(&m.bills[ix])
	return nil
}

// Bills returns a copy of the month's bills in order.
func (m *Month) Bills() []Bill {
	out := make([]Bill, len(m.bills))
	copy(out, m.bills)
	return out
}

// CarryOver returns a new month for key holding the same creditors and
// amounts, all unpaid.
func (m *Month) CarryOver(key string) *Month {
	next := &Month{date: key, bills: make([]Bill, 0, len(m.bills))}
	for _, b := range m.bills {
		next.bills = append(next.bills, NewBill(b.Creditor, b.Amount))
	}
	return next
}

// MonthTotals summarizes the amounts of a month.
type MonthTotals struct {
	Total       decimal.Decimal
	Paid        decimal.Decimal
	Outstanding decimal.Decimal
	PaidCount   int
	UnpaidCount int
	Unparsable  int // bills whose amount is not a number; excluded from sums
}

// Totals sums the month's amounts by paid status.
func (m *Month) Totals() MonthTotals {
	var t MonthTotals
	for _, b := range m.bills {
		if b.Paid() {
			t.PaidCount++
		} else {
			t.UnpaidCount++
		}

		v, err := b.AmountValue()
		if err != nil {
			t.Unparsable++
			continue
		}
		t.Total = t.Total.Add(v)
		if b.Paid() {
			t.Paid = t.Paid.Add(v)
		} else {
			t.Outstanding = t.Outstanding.Add(v)
		}
	}
	return t
}
