package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/economanager/internal/bills"
	"github.com/theirongolddev/economanager/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagAddMonth string
	flagAddPaid  bool
	flagAddDate  string
)

var addCmd = &cobra.Command{
	Use:   "add <creditor> <amount>",
	Short: "Add a bill to a month",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddMonth, "month", "m", "", "Month as YYYY_MM (default: current month)")
	addCmd.Flags().BoolVar(&flagAddPaid, "paid", false, "Mark the bill paid today")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Paid date as YYYY-MM-DD (implies --paid)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	creditor := strings.TrimSpace(args[0])
	amount := strings.TrimSpace(args[1])
	if creditor == "" {
		return errors.New("creditor is required")
	}
	if _, err := bills.ParseAmount(amount); err != nil {
		return fmt.Errorf("amount %q is not a number", amount)
	}

	paidOn, paid, err := paidDate(flagAddDate, flagAddPaid)
	if err != nil {
		return err
	}

	bill := bills.NewBill(creditor, amount)
	if paid {
		bill.MarkPaid(paidOn)
	}
	if err := bill.Validate(); err != nil {
		return err
	}

	tracker, err := loadTracker()
	if err != nil {
		return err
	}
	ix, m, err := resolveMonth(tracker, flagAddMonth)
	if err != nil {
		return err
	}

	m.AddBill(bill)
	if err := tracker.StoreBill(ix); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  Added #%d %s (%s) to %s\n",
		m.BillCount(), bill.Creditor, cli.FormatBillAmount(bill), cli.FormatMonth(m.Date()))
	return nil
}

// paidDate resolves --date/--paid into the payment day. An explicit date
// implies paid; --paid alone means today.
func paidDate(date string, paid bool) (time.Time, bool, error) {
	if date != "" {
		t, err := time.ParseInLocation(bills.PaidDateLayout, date, time.Local)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
		}
		return t, true, nil
	}
	if paid {
		return time.Now(), true, nil
	}
	return time.Time{}, false, nil
}
