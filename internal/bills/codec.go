package bills

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	fieldSep     = ","
	recordSep    = "\n"
	fieldCount   = 4
	keySepChar   = '_'
	monthFileExt = ".csv"
)

// parseFileName extracts the month key from a "Bills_YYYY_MM.csv" name:
// the seven characters following the first underscore.
func parseFileName(name string) (string, bool) {
	pos := strings.IndexByte(name, keySepChar)
	if pos < 0 {
		return "", false
	}
	rest := name[pos+1:]
	if len(rest) < len(MonthKeyLayout) {
		return "", false
	}
	key := rest[:len(MonthKeyLayout)]
	return key, ValidMonthKey(key)
}

func isMonthFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), monthFileExt)
}

// decodeRows turns file lines into bills. Every non-empty line must have
// exactly four comma-separated fields.
func decodeRows(path string, lines []string) ([]Bill, error) {
	var out []Bill
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		cells := strings.Split(line, fieldSep)
		if len(cells) != fieldCount {
			return nil, &ParseError{
				Path:   path,
				Line:   i + 1,
				Reason: fmt.Sprintf("expected %d columns, got %d", fieldCount, len(cells)),
			}
		}
		out = append(out, Bill{
			Creditor: cells[0],
			Amount:   cells[1],
			IsPaid:   cells[2],
			PaidDate: cells[3],
		})
	}
	return out, nil
}

// encodeRows joins bills into the file body: one record per line, no
// trailing newline after the last record.
func encodeRows(bills []Bill) (string, error) {
	var b strings.Builder
	for i, bill := range bills {
		if err := bill.Validate(); err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(recordSep)
		}
		b.WriteString(strings.Join(bill.fields(), fieldSep))
	}
	return b.String(), nil
}
