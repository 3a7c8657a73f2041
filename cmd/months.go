package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/economanager/internal/cli"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List months with bill counts and totals",
	Args:  cobra.NoArgs,
	RunE:  runMonths,
}

func init() {
	rootCmd.AddCommand(monthsCmd)
}

func runMonths(cmd *cobra.Command, _ []string) error {
	tracker, err := loadTracker()
	if err != nil {
		return err
	}

	var total, paid, outstanding decimal.Decimal
	var paidBills, allBills int
	rows := make([][]string, 0, tracker.GetBillMonthCount())
	for _, m := range tracker.Months() {
		t := m.Totals()
		total = total.Add(t.Total)
		paid = paid.Add(t.Paid)
		outstanding = outstanding.Add(t.Outstanding)
		paidBills += t.PaidCount
		allBills += m.BillCount()

		rows = append(rows, []string{
			cli.FormatMonth(m.Date()),
			strconv.Itoa(m.BillCount()),
			cli.FormatAmount(t.Total),
			cli.FormatAmount(t.Paid),
			cli.FormatAmount(t.Outstanding),
		})
	}

	out := cmd.OutOrStdout()
	if allBills == 0 {
		// The current month is always loaded, so an empty directory still
		// has one month.
		fmt.Fprintln(out, cli.RenderWarning("No bills in "+tracker.Root()+". Run `econo add` to record one."))
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "MONTHS  " + tracker.Root(),
		Headers: []string{"Month", "Bills", "Total", "Paid", "Outstanding"},
		Rows:    rows,
		Footer:  []string{"TOTAL", strconv.Itoa(allBills), cli.FormatAmount(total), cli.FormatAmount(paid), cli.FormatAmount(outstanding)},
	}))
	fmt.Fprintf(out, "  Bills paid %s\n", cli.RenderProgressBar(paidBills, allBills, 30))
	return nil
}
