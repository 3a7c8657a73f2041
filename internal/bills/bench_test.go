package bills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// seedYears writes one file per month for the given number of years, each
// with a dozen bills.
func seedYears(b *testing.B, dir string, years int) {
	b.Helper()
	var rows []string
	for i := 0; i < 12; i++ {
		rows = append(rows, fmt.Sprintf("Creditor %d,%d.50,true,2020-01-%02d", i, 10*i, i+1))
	}
	body := []byte(strings.Join(rows, recordSep))

	for y := 0; y < years; y++ {
		for m := 1; m <= 12; m++ {
			name := MonthFileName(fmt.Sprintf("%04d_%02d", 2000+y, m))
			if err := os.WriteFile(filepath.Join(dir, name), body, 0o600); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkLoadBills(b *testing.B) {
	dir := b.TempDir()
	seedYears(b, dir, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := NewTracker(dir, WithClock(FixedClock(testNow)))
		if err := tr.LoadBills(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStoreBills(b *testing.B) {
	dir := b.TempDir()
	seedYears(b, dir, 10)

	tr := NewTracker(dir, WithClock(FixedClock(testNow)))
	if err := tr.LoadBills(); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tr.StoreBills(); err != nil {
			b.Fatal(err)
		}
	}
}
