package tui

import (
	"errors"
	"strings"

	"github.com/theirongolddev/economanager/internal/bills"
	"github.com/theirongolddev/economanager/internal/config"
	"github.com/theirongolddev/economanager/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the setup wizard.
type SetupValues struct {
	BillsDir      string
	Theme         string
	ConfirmDelete bool
}

// SetupValuesFrom prefills the wizard from an existing config.
func SetupValuesFrom(cfg config.Config, billsDir string) SetupValues {
	themeName := cfg.Appearance.Theme
	if _, ok := theme.ByName(themeName); !ok {
		themeName = theme.FlexokiDark.Name
	}
	return SetupValues{
		BillsDir:      billsDir,
		Theme:         themeName,
		ConfirmDelete: cfg.TUI.ConfirmDelete,
	}
}

// Apply copies the wizard answers onto cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	cfg.General.BillsDir = strings.TrimSpace(v.BillsDir)
	cfg.Appearance.Theme = v.Theme
	cfg.TUI.ConfirmDelete = v.ConfirmDelete
}

// NewSetupForm builds the setup wizard. Answers are written into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to EconoManager").
				Description("Bills are kept as one CSV file per month.\nLet's pick where they live."),
			huh.NewInput().
				Title("Bills directory").
				Description("Created if it does not exist.").
				Value(&vals.BillsDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a directory is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.Theme),
			huh.NewConfirm().
				Title("Ask before deleting a bill?").
				Value(&vals.ConfirmDelete),
		),
	).WithShowHelp(false)
}

// billFormValues holds the add-bill form answers. The form writes through
// pointers, so App keeps it behind a pointer that survives model copies.
type billFormValues struct {
	Creditor string
	Amount   string
	Paid     bool
}

func (v billFormValues) bill() bills.Bill {
	return bills.NewBill(strings.TrimSpace(v.Creditor), strings.TrimSpace(v.Amount))
}

func validField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		if strings.ContainsAny(s, ",\r\n") {
			return errors.New(name + " cannot contain commas")
		}
		return nil
	}
}

func validAmount(s string) error {
	if err := validField("amount")(s); err != nil {
		return err
	}
	if _, err := bills.ParseAmount(s); err != nil {
		return errors.New("amount must be a number like 85.50")
	}
	return nil
}

func newAddBillForm(vals *billFormValues, month string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Creditor").
				Description("New bill for " + month).
				Value(&vals.Creditor).
				Validate(validField("creditor")),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&vals.Amount).
				Validate(validAmount),
			huh.NewConfirm().
				Title("Already paid?").
				Value(&vals.Paid),
		),
	).WithShowHelp(false)
}
