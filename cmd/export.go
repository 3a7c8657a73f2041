package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/economanager/internal/export"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export every month to an Excel workbook, one sheet per month",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fmt.Errorf("export file %q must end in .xlsx", path)
	}

	tracker, err := loadTracker()
	if err != nil {
		return err
	}

	months := tracker.Months()
	if err := export.WriteXLSX(path, months); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	logger.Info("exported workbook", "path", path, "months", len(months))
	fmt.Fprintf(cmd.OutOrStdout(), "  Exported %d months to %s\n", len(months), path)
	return nil
}
