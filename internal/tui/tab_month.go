package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/economanager/internal/bills"
	"github.com/theirongolddev/economanager/internal/cli"
	"github.com/theirongolddev/economanager/internal/tui/components"
	"github.com/theirongolddev/economanager/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Fixed column widths of the bill table; the creditor column takes the rest.
const (
	colIndexW  = 4
	colAmountW = 14
	colPaidW   = 6
	colDateW   = 12
)

func (a App) renderMonthTab(cw int) string {
	m := a.currentMonth()
	if m == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(monthMetrics(m), cw))
	b.WriteString("\n")

	title := fmt.Sprintf("%s · %d bills", cli.FormatMonth(m.Date()), m.BillCount())
	if a.dirty[m.Date()] {
		title += " · unsaved"
	}
	b.WriteString(components.ContentCard(title, a.renderBillTable(m, components.CardInnerWidth(cw)), cw))
	return b.String()
}

func monthMetrics(m *bills.Month) []components.Metric {
	t := theme.Active
	totals := m.Totals()

	var unparsable string
	if totals.Unparsable > 0 {
		unparsable = fmt.Sprintf("%d not numeric", totals.Unparsable)
	}

	paidShare := ""
	if share := cli.FormatShare(totals.Paid, totals.Total); share != "" {
		paidShare = share + " of total"
	}

	return []components.Metric{
		{Label: "Total", Value: cli.FormatAmount(totals.Total), Note: unparsable},
		{Label: "Paid", Value: cli.FormatAmount(totals.Paid), Note: fmt.Sprintf("%d bills", totals.PaidCount), Color: t.Paid},
		{Label: "Outstanding", Value: cli.FormatAmount(totals.Outstanding), Note: fmt.Sprintf("%d bills", totals.UnpaidCount), Color: t.Unpaid},
		{Label: "Paid share", Value: paidShare},
	}
}

func (a App) renderBillTable(m *bills.Month, innerW int) string {
	t := theme.Active

	creditorW := innerW - colIndexW - colAmountW - colPaidW - colDateW
	if creditorW < 10 {
		creditorW = 10
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true)
	paidStyle := lipgloss.NewStyle().Foreground(t.Paid)
	unpaidStyle := lipgloss.NewStyle().Foreground(t.Unpaid)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(headStyle.Render(
		padRight("#", colIndexW) +
			padRight("Creditor", creditorW) +
			padLeft("Amount", colAmountW) +
			padLeft("Paid", colPaidW) +
			padLeft("Date", colDateW)))

	list := m.Bills()
	if len(list) == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("No bills yet. Press a to add one, or n to carry over the previous month."))
		return b.String()
	}

	end := a.offset + a.visibleRows()
	if end > len(list) {
		end = len(list)
	}

	for i := a.offset; i < end; i++ {
		bill := list[i]
		b.WriteString("\n")

		amount := cli.FormatBillAmount(bill)
		if i == a.cursor && a.mode == modeEditAmount {
			amount = a.amountInput.View()
		}

		paidMark := "·"
		if bill.Paid() {
			paidMark = cli.FormatPaid(bill)
		}

		cells := padRight(fmt.Sprintf("%d", i+1), colIndexW) +
			padRight(truncStr(bill.Creditor, creditorW-1), creditorW) +
			padLeft(amount, colAmountW)

		if i == a.cursor {
			line := cells + padLeft(paidMark, colPaidW) + padLeft(bill.PaidDate, colDateW)
			b.WriteString(cursorStyle.Render(line))
			continue
		}

		status := unpaidStyle.Render(padLeft(paidMark, colPaidW))
		if bill.Paid() {
			status = paidStyle.Render(padLeft(paidMark, colPaidW))
		}
		b.WriteString(rowStyle.Render(cells) + status + dimStyle.Render(padLeft(bill.PaidDate, colDateW)))
	}

	if hidden := len(list) - end; hidden > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", hidden)))
	}

	return b.String()
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
