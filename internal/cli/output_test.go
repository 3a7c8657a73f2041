package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/economanager/internal/bills"
)

func sampleMonth() *bills.Month {
	return bills.NewMonth("2023_01",
		bills.Bill{Creditor: "Landlord", Amount: "1200.00", IsPaid: "true", PaidDate: "2023-01-03"},
		bills.Bill{Creditor: "Electric", Amount: "85.50", IsPaid: "false"},
	)
}

func TestWriteMonth_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMonth(&buf, sampleMonth(), FormatJSON); err != nil {
		t.Fatal(err)
	}

	var doc MonthDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if doc.Month != "2023_01" || len(doc.Bills) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	if !doc.Outstanding.Equal(decimal.RequireFromString("85.50")) || !doc.Paid.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("paid/outstanding = %s/%s", doc.Paid, doc.Outstanding)
	}
}

func TestWriteMonth_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMonth(&buf, sampleMonth(), FormatYAML); err != nil {
		t.Fatal(err)
	}

	var doc MonthDocument
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML %q: %v", buf.String(), err)
	}
	if doc.Bills[0].PaidDate != "2023-01-03" {
		t.Errorf("bill 0 = %+v", doc.Bills[0])
	}
	if got := doc.Total.StringFixed(2); got != "1285.50" {
		t.Errorf("total = %s, want 1285.50", got)
	}
}

func TestWriteMonth_EmptyMonthJSONHasEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMonth(&buf, bills.NewMonth("2024_03"), FormatJSON); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"bills": []`) {
		t.Errorf("empty month JSON = %s", buf.String())
	}
}

func TestWriteMonth_MarkdownAndTable(t *testing.T) {
	for _, format := range []string{FormatMarkdown, FormatTable} {
		var buf bytes.Buffer
		if err := WriteMonth(&buf, sampleMonth(), format); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		out := buf.String()
		for _, want := range []string{"Landlord", "1,200.00", "Electric", "85.50"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s output missing %q:\n%s", format, want, out)
			}
		}
	}
}

func TestWriteMonth_UnknownFormat(t *testing.T) {
	if err := WriteMonth(&bytes.Buffer{}, sampleMonth(), "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRenderTable_RowsAndBorders(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Month", "Bills"},
		Rows:    [][]string{{"Jan 2023", "2"}, {"Feb 2023", "10"}},
		Footer:  []string{"TOTAL", "12"},
	})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// top, header, header separator, 2 rows, footer separator, footer, bottom
	if len(lines) != 8 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i, l := range lines {
		if lipgloss.Width(l) != lipgloss.Width(lines[0]) {
			t.Errorf("line %d width %d, want %d:\n%s", i, lipgloss.Width(l), lipgloss.Width(lines[0]), out)
		}
	}
	if !strings.Contains(lines[3], "    2 │") {
		t.Errorf("numeric column should be right-aligned: %q", lines[3])
	}

	if RenderTable(Table{Rows: [][]string{{"x"}}}) != "" {
		t.Error("a table without headers should render nothing")
	}
}

func TestRenderProgressBar(t *testing.T) {
	out := RenderProgressBar(1, 4, 8)
	if !strings.Contains(out, "██░░░░░░") || !strings.HasSuffix(out, "1/4") {
		t.Errorf("RenderProgressBar(1, 4, 8) = %q", out)
	}
	if got := RenderProgressBar(1, 0, 8); got != "" {
		t.Errorf("zero total should render nothing, got %q", got)
	}
}
