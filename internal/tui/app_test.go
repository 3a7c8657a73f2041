package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/economanager/internal/bills"
	"github.com/theirongolddev/economanager/internal/config"
	"github.com/theirongolddev/economanager/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

const februaryBills = "Electric,85.50,true,2024-02-03\nWater,30.00,false,"

func newTestApp(t *testing.T, cfg config.Config, files map[string]string) (App, string) {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	clock := bills.FixedClock(testNow)
	tracker := bills.NewTracker(dir, bills.WithClock(clock))
	a := NewApp(tracker, cfg, Options{
		Clock:      clock,
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
	})

	a = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
	a = update(t, a, BillsLoadedMsg{Err: tracker.LoadBills()})
	if !a.loaded {
		t.Fatalf("app not loaded: %v", a.loadErr)
	}
	return a, dir
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T", m)
	}
	return app
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		a = update(t, a, keyMsg(k))
	}
	return a
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestLoadedAppStartsOnCurrentMonth(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})

	if got := a.tracker.GetBillMonthCount(); got != 2 {
		t.Fatalf("months = %d, want 2", got)
	}
	if got := a.currentMonth().Date(); got != "2024_03" {
		t.Errorf("active month = %s, want 2024_03", got)
	}
	if !strings.Contains(a.View(), "Mar 2024") {
		t.Error("view should show the current month tab")
	}
}

func TestLoadedAppSkipsLaterMonths(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{
		"Bills_2024_03.csv": "Rent,900,false,",
		"Bills_2024_04.csv": "",
	})

	if got := a.currentMonth().Date(); got != "2024_03" {
		t.Fatalf("active month = %s, want 2024_03", got)
	}
	if got := a.billCount(); got != 1 {
		t.Errorf("bills = %d, want the 1 loaded from disk", got)
	}
}

func TestMonthNavigation(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})

	a = press(t, a, "l")
	if got := a.currentMonth().Date(); got != "2024_02" {
		t.Fatalf("after l: month = %s, want 2024_02", got)
	}
	a = press(t, a, "j")
	if a.cursor != 1 {
		t.Errorf("cursor = %d, want 1", a.cursor)
	}

	// Past the oldest month stays put
	a = press(t, a, "l")
	if a.activeTab != 1 {
		t.Errorf("activeTab = %d, want 1", a.activeTab)
	}

	a = press(t, a, "h")
	if a.activeTab != 0 || a.cursor != 0 {
		t.Errorf("after h: tab=%d cursor=%d, want 0, 0", a.activeTab, a.cursor)
	}
}

func TestTogglePaid(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})
	a = press(t, a, "l", "j", " ")

	b, err := a.currentMonth().GetBill(1)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Paid() || b.PaidDate != "2024-03-15" {
		t.Errorf("after toggle: %+v, want paid on 2024-03-15", b)
	}
	if !a.dirty["2024_02"] {
		t.Error("month should be marked unsaved")
	}

	a = press(t, a, " ")
	b, _ = a.currentMonth().GetBill(1)
	if b.Paid() || b.PaidDate != "" {
		t.Errorf("after second toggle: %+v, want unpaid without date", b)
	}
}

func TestSaveMonthWritesFile(t *testing.T) {
	a, dir := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})
	a = press(t, a, "l", "j", " ", "s")

	data, err := os.ReadFile(filepath.Join(dir, "Bills_2024_02.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := "Electric,85.50,true,2024-02-03\nWater,30.00,true,2024-03-15"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
	if a.anyDirty() {
		t.Error("saved month should be clean")
	}
	if a.statusKind != components.StatusOK {
		t.Errorf("status = %q, want success", a.status)
	}

	// The synthesized current month has not been written
	if _, err := os.Stat(filepath.Join(dir, "Bills_2024_03.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("current month file should not exist yet: %v", err)
	}
}

func TestSaveAllWritesEveryMonth(t *testing.T) {
	a, dir := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})
	a = press(t, a, "S")

	if _, err := os.Stat(filepath.Join(dir, "Bills_2024_03.csv")); err != nil {
		t.Errorf("current month not written: %v", err)
	}
	if a.anyDirty() {
		t.Error("no month should be unsaved")
	}
}

func TestDeleteBill(t *testing.T) {
	t.Run("with confirmation", func(t *testing.T) {
		a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})
		a = press(t, a, "l", "d")
		if a.mode != modeConfirmDelete {
			t.Fatalf("mode = %v, want confirm delete", a.mode)
		}
		a = press(t, a, "n")
		if got := a.currentMonth().BillCount(); got != 2 {
			t.Fatalf("cancelled delete removed a bill: count = %d", got)
		}
		a = press(t, a, "d", "y")
		if got := a.currentMonth().BillCount(); got != 1 {
			t.Fatalf("count = %d, want 1", got)
		}
		b, _ := a.currentMonth().GetBill(0)
		if b.Creditor != "Water" {
			t.Errorf("remaining bill = %q, want Water", b.Creditor)
		}
	})

	t.Run("without confirmation", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.TUI.ConfirmDelete = false
		a, _ := newTestApp(t, cfg, map[string]string{"Bills_2024_02.csv": februaryBills})
		a = press(t, a, "l", "j", "d")
		if got := a.currentMonth().BillCount(); got != 1 {
			t.Fatalf("count = %d, want 1", got)
		}
		if a.cursor != 0 {
			t.Errorf("cursor = %d, want clamped to 0", a.cursor)
		}
	})
}

func TestCarryOverFillsEmptyMonth(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})
	a = press(t, a, "n")

	m := a.currentMonth()
	if m.BillCount() != 2 {
		t.Fatalf("count = %d, want 2", m.BillCount())
	}
	for _, b := range m.Bills() {
		if b.Paid() || b.PaidDate != "" {
			t.Errorf("carried bill %+v should be unpaid", b)
		}
	}
	if !a.dirty["2024_03"] {
		t.Error("carried month should be unsaved")
	}

	// A month that already has bills is left alone
	a = press(t, a, "n")
	if a.currentMonth().BillCount() != 2 || a.statusKind != components.StatusError {
		t.Errorf("second carry over: count=%d status=%q", a.currentMonth().BillCount(), a.status)
	}
}

func TestEditAmount(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})
	a = press(t, a, "l", "e")
	if a.mode != modeEditAmount {
		t.Fatalf("mode = %v, want edit", a.mode)
	}
	if got := a.amountInput.Value(); got != "85.50" {
		t.Errorf("input prefilled with %q, want 85.50", got)
	}

	a.amountInput.SetValue("1,000")
	a = press(t, a, "enter")
	if a.mode != modeEditAmount || a.statusKind != components.StatusError {
		t.Fatal("amount with a comma should be refused")
	}

	a.amountInput.SetValue("90.25")
	a = press(t, a, "enter")
	b, _ := a.currentMonth().GetBill(0)
	if b.Amount != "90.25" {
		t.Errorf("amount = %q, want 90.25", b.Amount)
	}
	if a.mode != modeBrowse {
		t.Errorf("mode = %v, want browse", a.mode)
	}
}

func TestEditAmountEscapeKeepsValue(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})
	a = press(t, a, "l", "e")
	a.amountInput.SetValue("1.00")
	a = press(t, a, "esc")

	b, _ := a.currentMonth().GetBill(0)
	if b.Amount != "85.50" || a.anyDirty() {
		t.Errorf("escape should discard the edit: %+v dirty=%v", b, a.anyDirty())
	}
}

func TestQuitWithUnsavedChangesAsks(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{"Bills_2024_02.csv": februaryBills})

	if _, cmd := a.Update(keyMsg("q")); !isQuit(cmd) {
		t.Fatal("clean app should quit on q")
	}

	a = press(t, a, "l", " ")
	m, cmd := a.Update(keyMsg("q"))
	a = m.(App)
	if isQuit(cmd) || a.mode != modeConfirmQuit {
		t.Fatal("dirty app should ask before quitting")
	}

	a = press(t, a, "x")
	if a.mode != modeBrowse {
		t.Fatal("any other key should cancel the quit")
	}

	a = press(t, a, "q")
	if _, cmd := a.Update(keyMsg("y")); !isQuit(cmd) {
		t.Error("y should quit")
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), map[string]string{
		"Bills_2024_02.csv": februaryBills,
		"Bills_2024_01.csv": "Rent,900,true,2024-01-01",
	})

	tabs := a.tabs()
	x := components.TabVisualWidth(tabs[0]) + 1 + components.TabVisualWidth(tabs[1]) + 1 + 2
	a = update(t, a, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != 2 {
		t.Errorf("activeTab = %d, want 2", a.activeTab)
	}

	// Clicks below the tab bar do not switch months
	a = update(t, a, tea.MouseMsg{X: 1, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != 2 {
		t.Errorf("activeTab = %d after content click, want 2", a.activeTab)
	}
}

func TestLoadErrorIsShown(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Bills_2024_02.csv"), []byte("Electric,85.50,true"), 0o600); err != nil {
		t.Fatal(err)
	}
	tracker := bills.NewTracker(dir, bills.WithClock(bills.FixedClock(testNow)))
	a := NewApp(tracker, config.DefaultConfig(), Options{Clock: bills.FixedClock(testNow)})
	a = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
	a = update(t, a, BillsLoadedMsg{Err: tracker.LoadBills()})

	if a.loaded || a.loadErr == nil {
		t.Fatal("load should have failed")
	}
	if !strings.Contains(a.View(), "Could not load bills") {
		t.Error("view should report the load failure")
	}
	if _, cmd := a.Update(keyMsg("r")); cmd == nil {
		t.Error("r should retry the load")
	}
}

func TestHelpToggle(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultConfig(), nil)
	a = press(t, a, "?")
	if !a.showHelp || !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Fatal("? should open help")
	}
	a = press(t, a, "j")
	if a.showHelp {
		t.Error("any key should close help")
	}
}
