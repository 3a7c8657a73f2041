package cmd

import (
	"fmt"

	"github.com/theirongolddev/economanager/internal/cli"

	"github.com/spf13/cobra"
)

var flagRemoveMonth string

var removeCmd = &cobra.Command{
	Use:     "remove <index>",
	Aliases: []string{"rm"},
	Short:   "Remove a bill from a month (index as shown by list)",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	removeCmd.Flags().StringVarP(&flagRemoveMonth, "month", "m", "", "Month as YYYY_MM (default: current month)")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	n, err := parseBillIndex(args[0])
	if err != nil {
		return err
	}

	tracker, err := loadTracker()
	if err != nil {
		return err
	}
	ix, m, err := resolveMonth(tracker, flagRemoveMonth)
	if err != nil {
		return err
	}

	b, err := m.GetBill(n - 1)
	if err != nil {
		return fmt.Errorf("bill #%d in %s: %w", n, m.Date(), err)
	}
	if err := m.RemoveBill(n - 1); err != nil {
		return err
	}
	if err := tracker.StoreBill(ix); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  Removed %s (%s) from %s\n",
		b.Creditor, cli.FormatBillAmount(b), cli.FormatMonth(m.Date()))
	return nil
}
