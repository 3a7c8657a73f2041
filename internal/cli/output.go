package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/economanager/internal/bills"
)

// Output formats accepted by --format.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatTable, FormatMarkdown, FormatJSON, FormatYAML}

// MonthDocument is the structured form of a month for JSON and YAML output.
type MonthDocument struct {
	Month       string          `json:"month" yaml:"month"`
	Bills       []bills.Bill    `json:"bills" yaml:"bills"`
	Total       decimal.Decimal `json:"total" yaml:"total"`
	Paid        decimal.Decimal `json:"paid" yaml:"paid"`
	Outstanding decimal.Decimal `json:"outstanding" yaml:"outstanding"`
}

// NewMonthDocument builds the structured form of m.
func NewMonthDocument(m *bills.Month) MonthDocument {
	totals := m.Totals()
	doc := MonthDocument{
		Month:       m.Date(),
		Bills:       m.Bills(),
		Total:       totals.Total,
		Paid:        totals.Paid,
		Outstanding: totals.Outstanding,
	}
	if doc.Bills == nil {
		doc.Bills = []bills.Bill{}
	}
	return doc
}

// BillRows returns one table row per bill: 1-based position, creditor, amount,
// paid mark and paid date.
func BillRows(m *bills.Month) [][]string {
	rows := make([][]string, 0, m.BillCount())
	for i, b := range m.Bills() {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.Creditor,
			FormatBillAmount(b),
			FormatPaid(b),
			b.PaidDate,
		})
	}
	return rows
}

// BillHeaders are the column headers matching BillRows.
var BillHeaders = []string{"#", "Creditor", "Amount", "Paid", "Date"}

// WriteMonth writes m to w in the given format.
func WriteMonth(w io.Writer, m *bills.Month, format string) error {
	switch format {
	case FormatTable, "":
		totals := m.Totals()
		_, err := io.WriteString(w, RenderTable(Table{
			Title:     FormatMonth(m.Date()),
			Headers:   BillHeaders,
			Rows:      BillRows(m),
			Footer:    []string{"", "Total", FormatAmount(totals.Total), "", ""},
			LeftAlign: 2,
		}))
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, RenderMarkdown(m)+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewMonthDocument(m))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewMonthDocument(m)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want one of %v)", format, Formats)
	}
}

// RenderMarkdown renders a month as a Markdown table with a totals footer.
func RenderMarkdown(m *bills.Month) string {
	tw := table.NewWriter()
	tw.SetTitle(FormatMonth(m.Date()))

	header := table.Row{}
	for _, h := range BillHeaders {
		header = append(header, h)
	}
	tw.AppendHeader(header)

	for _, r := range BillRows(m) {
		row := table.Row{}
		for _, c := range r {
			row = append(row, c)
		}
		tw.AppendRow(row)
	}

	totals := m.Totals()
	tw.AppendFooter(table.Row{"", "Outstanding", FormatAmount(totals.Outstanding), "", ""})
	tw.AppendFooter(table.Row{"", "Total", FormatAmount(totals.Total), "", ""})

	return tw.RenderMarkdown()
}
