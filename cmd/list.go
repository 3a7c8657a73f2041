package cmd

import (
	"github.com/theirongolddev/economanager/internal/cli"

	"github.com/spf13/cobra"
)

var flagListFormat string

var listCmd = &cobra.Command{
	Use:   "list [YYYY_MM]",
	Short: "Show the bills of a month (default: current month)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListFormat, "format", "f", cli.FormatTable, "Output format: table, markdown, json, yaml")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	tracker, err := loadTracker()
	if err != nil {
		return err
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	}
	_, m, err := resolveMonth(tracker, key)
	if err != nil {
		return err
	}

	return cli.WriteMonth(cmd.OutOrStdout(), m, flagListFormat)
}
