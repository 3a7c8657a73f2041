package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/economanager/internal/bills"
	"github.com/theirongolddev/economanager/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagPayMonth string
	flagPayDate  string
)

var payCmd = &cobra.Command{
	Use:   "pay <index>",
	Short: "Mark a bill paid (index as shown by list)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPay,
}

var unpayCmd = &cobra.Command{
	Use:   "unpay <index>",
	Short: "Mark a bill unpaid and clear its date",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnpay,
}

func init() {
	payCmd.Flags().StringVarP(&flagPayMonth, "month", "m", "", "Month as YYYY_MM (default: current month)")
	payCmd.Flags().StringVar(&flagPayDate, "date", "", "Paid date as YYYY-MM-DD (default: today)")
	unpayCmd.Flags().StringVarP(&flagPayMonth, "month", "m", "", "Month as YYYY_MM (default: current month)")
	rootCmd.AddCommand(payCmd, unpayCmd)
}

func runPay(cmd *cobra.Command, args []string) error {
	paidOn, _, err := paidDate(flagPayDate, true)
	if err != nil {
		return err
	}
	return updateBill(cmd, args[0], "Paid", func(b *bills.Bill) { b.MarkPaid(paidOn) })
}

func runUnpay(cmd *cobra.Command, args []string) error {
	return updateBill(cmd, args[0], "Unpaid", func(b *bills.Bill) { b.MarkUnpaid() })
}

// updateBill applies fn to the bill at the 1-based index and stores the month.
func updateBill(cmd *cobra.Command, arg, verb string, fn func(*bills.Bill)) error {
	n, err := parseBillIndex(arg)
	if err != nil {
		return err
	}

	tracker, err := loadTracker()
	if err != nil {
		return err
	}
	ix, m, err := resolveMonth(tracker, flagPayMonth)
	if err != nil {
		return err
	}

	if err := m.UpdateBill(n-1, fn); err != nil {
		return fmt.Errorf("bill #%d in %s: %w", n, m.Date(), err)
	}
	if err := tracker.StoreBill(ix); err != nil {
		return err
	}

	b, _ := m.GetBill(n - 1)
	fmt.Fprintf(cmd.OutOrStdout(), "  %s #%d %s (%s) %s\n",
		verb, n, b.Creditor, cli.FormatBillAmount(b), b.PaidDate)
	return nil
}

func parseBillIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid bill index %q: want a number from 1", arg)
	}
	return n, nil
}
