package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/economanager/internal/bills"
	"github.com/theirongolddev/economanager/internal/config"
	"github.com/theirongolddev/economanager/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	vals := tui.SetupValuesFrom(cfg, config.BillsDir(flagDataDir, cfg))
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup: %w", err)
	}
	vals.Apply(&cfg)

	if err := bills.EnsureDataDir(bills.OSFileSystem{}, cfg.General.BillsDir); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Bills in %s\n", cfg.General.BillsDir)
	fmt.Fprintf(out, "  Saved to %s\n", config.Path())
	fmt.Fprintln(out, "  Run `econo setup` anytime to reconfigure.")
	fmt.Fprintln(out)

	return nil
}
