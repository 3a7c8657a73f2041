package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/economanager/internal/bills"
	"github.com/theirongolddev/economanager/internal/cli"

	"github.com/spf13/cobra"
)

var flagNewMonthFrom string

var newMonthCmd = &cobra.Command{
	Use:   "new-month [YYYY_MM]",
	Short: "Start a month, optionally carrying over another month's bills",
	Long: "Start a month (default: the month after the newest one).\n" +
		"With --from, the creditors and amounts of that month are copied, all unpaid.",
	Args: cobra.MaximumNArgs(1),
	RunE: runNewMonth,
}

func init() {
	newMonthCmd.Flags().StringVar(&flagNewMonthFrom, "from", "", "Carry over the bills of this YYYY_MM month")
	rootCmd.AddCommand(newMonthCmd)
}

func runNewMonth(cmd *cobra.Command, args []string) error {
	tracker, err := loadTracker()
	if err != nil {
		return err
	}

	key := nextMonthKey(tracker)
	if len(args) == 1 {
		key = args[0]
	}

	var src *bills.Month
	if flagNewMonthFrom != "" {
		if _, src, err = resolveMonth(tracker, flagNewMonthFrom); err != nil {
			return err
		}
	}

	month := bills.NewMonth(key)
	if src != nil {
		month = src.CarryOver(key)
	}

	err = tracker.AddBillMonth(month)
	if errors.Is(err, bills.ErrDuplicateMonth) {
		// The current month always exists after a load; fill it if empty.
		_, existing, _ := tracker.FindMonth(key)
		if existing.BillCount() > 0 || src == nil {
			return fmt.Errorf("%s already has bills: %w", key, err)
		}
		for _, b := range month.Bills() {
			existing.AddBill(b)
		}
		month = existing
	} else if err != nil {
		return err
	}

	ix, _, _ := tracker.FindMonth(key)
	if err := tracker.StoreBill(ix); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if src != nil {
		fmt.Fprintf(out, "  Started %s with %d bills from %s\n",
			cli.FormatMonth(key), month.BillCount(), cli.FormatMonth(src.Date()))
	} else {
		fmt.Fprintf(out, "  Started %s\n", cli.FormatMonth(key))
	}
	fmt.Fprintf(out, "  Wrote %s\n", bills.MonthFileName(key))
	return nil
}

// nextMonthKey returns the month after the newest month in the tracker.
func nextMonthKey(tracker *bills.Tracker) string {
	newest, err := tracker.GetBillMonth(0)
	if err != nil {
		return tracker.CurrentKey()
	}
	t, err := time.Parse(bills.MonthKeyLayout, newest.Date())
	if err != nil {
		return tracker.CurrentKey()
	}
	return bills.MonthKey(t.AddDate(0, 1, 0))
}
