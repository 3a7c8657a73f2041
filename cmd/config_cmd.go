package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/economanager/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	if cfg.General.BillsDir != "" {
		fmt.Fprintf(out, "    Bills directory:   %s\n", cfg.General.BillsDir)
	} else {
		fmt.Fprintln(out, "    Bills directory:   not set")
	}
	fmt.Fprintf(out, "    In use:            %s (%s)\n", config.BillsDir(flagDataDir, cfg), billsDirSource(cfg))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [TUI]")
	fmt.Fprintf(out, "    Confirm delete: %v\n", cfg.TUI.ConfirmDelete)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `econo setup` to reconfigure.")
	return nil
}

// billsDirSource names where the bills directory in use comes from.
func billsDirSource(cfg config.Config) string {
	switch {
	case flagDataDir != "":
		return "--data-dir"
	case os.Getenv(config.BillsDirEnv) != "":
		return "$" + config.BillsDirEnv
	case cfg.General.BillsDir != "":
		return "config"
	}
	return "default"
}
