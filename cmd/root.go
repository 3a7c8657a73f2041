// Package cmd implements the econo CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/theirongolddev/economanager/internal/bills"
	"github.com/theirongolddev/economanager/internal/config"
	"github.com/theirongolddev/economanager/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagVerbose bool
	flagLogFile string
)

var (
	logger   = logging.Discard()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "econo",
	Short: "Monthly bill tracker",
	Long: "Track monthly household bills: creditors, amounts and payments.\n" +
		"Each month is kept as Bills_YYYY_MM.csv in the bills directory.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = setupLogging
	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error { return closeLog() }

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "",
		"Bills directory (default: $"+config.BillsDirEnv+", config, or ~/EconoManager/Bills)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
}

// setupLogging builds the logger for the command being run. The TUI owns
// the terminal, so it only logs when --log-file is given.
func setupLogging(cmd *cobra.Command, _ []string) error {
	var out io.Writer = cmd.ErrOrStderr()
	if cmd == rootCmd || cmd == tuiCmd {
		out = io.Discard
	}

	l, closeFn, err := logging.New(logging.Config{
		Verbose:   flagVerbose,
		File:      flagLogFile,
		Output:    out,
		Component: cmd.Name(),
	})
	if err != nil {
		return err
	}
	logger, closeLog = l, closeFn
	return nil
}

// loadConfig reads the config file, falling back to defaults when it is
// absent. A broken file is an error so it is not silently overwritten.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", config.Path(), err)
	}
	return cfg, nil
}

// openTracker resolves the bills directory, creates it if absent, and
// returns an unloaded tracker over it.
func openTracker(cfg config.Config, log *slog.Logger) (*bills.Tracker, error) {
	dir := config.BillsDir(flagDataDir, cfg)
	if err := bills.EnsureDataDir(bills.OSFileSystem{}, dir); err != nil {
		return nil, err
	}
	log.Debug("bills directory", "dir", dir)
	return bills.NewTracker(dir, bills.WithLogger(log)), nil
}

// loadTracker is the shared loading path used by the non-interactive commands.
func loadTracker() (*bills.Tracker, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	tracker, err := openTracker(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := tracker.LoadBills(); err != nil {
		return nil, fmt.Errorf("loading bills: %w", err)
	}
	return tracker, nil
}

// resolveMonth finds the month for key, or the current month when key is
// empty.
func resolveMonth(tracker *bills.Tracker, key string) (int, *bills.Month, error) {
	if key == "" {
		key = tracker.CurrentKey()
	}
	if !bills.ValidMonthKey(key) {
		return -1, nil, fmt.Errorf("invalid month %q: want YYYY_MM", key)
	}
	ix, m, ok := tracker.FindMonth(key)
	if !ok {
		return -1, nil, fmt.Errorf("no bills for %s (create it with `econo new-month %s`)", key, key)
	}
	return ix, m, nil
}
