// Package export writes bill months to spreadsheet files.
package export

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/economanager/internal/bills"
)

var header = []interface{}{"Creditor", "Amount", "Paid", "Paid date"}

// WriteXLSX writes one sheet per month, named by month key, in the given
// order. Amounts that parse as numbers are stored as numbers.
func WriteXLSX(path string, months []*bills.Month) error {
	if len(months) == 0 {
		return errors.New("no months to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, m := range months {
		sheet := m.Date()
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("naming sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet %s: %w", sheet, err)
		}

		if err := writeMonthSheet(f, sheet, m, bold); err != nil {
			return fmt.Errorf("writing sheet %s: %w", sheet, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func writeMonthSheet(f *excelize.File, sheet string, m *bills.Month, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	row := 2
	for _, b := range m.Bills() {
		var amount interface{} = b.Amount
		if v, err := b.AmountValue(); err == nil {
			amount = v.InexactFloat64()
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []interface{}{b.Creditor, amount, b.IsPaid, b.PaidDate}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		row++
	}

	totals := m.Totals()
	cell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return err
	}
	summary := []interface{}{"Outstanding", totals.Outstanding.Round(2).InexactFloat64(), "Total", totals.Total.Round(2).InexactFloat64()}
	return f.SetSheetRow(sheet, cell, &summary)
}
