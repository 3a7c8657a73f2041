// Package tui provides the interactive Bubble Tea bill tracker for EconoManager.
package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/theirongolddev/economanager/internal/bills"
	"github.com/theirongolddev/economanager/internal/cli"
	"github.com/theirongolddev/economanager/internal/config"
	"github.com/theirongolddev/economanager/internal/tui/components"
	"github.com/theirongolddev/economanager/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// BillsLoadedMsg is sent when the tracker finishes reading the bills directory.
type BillsLoadedMsg struct {
	Err error
}

type mode int

const (
	modeBrowse mode = iota
	modeEditAmount
	modeAddBill
	modeConfirmDelete
	modeConfirmQuit
	modeSetup
)

// Options configures an App.
type Options struct {
	Clock  bills.Clock
	Logger *slog.Logger

	// NeedSetup shows the setup wizard after the bills load.
	NeedSetup bool
	// ConfigPath is where the setup wizard saves. Defaults to config.Path().
	ConfigPath string
}

// App is the root Bubble Tea model.
type App struct {
	tracker *bills.Tracker
	clock   bills.Clock
	logger  *slog.Logger
	cfg     config.Config

	loaded  bool
	loadErr error

	// UI state
	width     int
	height    int
	activeTab int
	cursor    int
	offset    int
	showHelp  bool
	mode      mode

	// Months with unsaved changes, by key. Shared across model copies.
	dirty map[string]bool

	amountInput textinput.Model

	addForm *huh.Form
	addVals *billFormValues

	setupForm  *huh.Form
	setupVals  *SetupValues
	needSetup  bool
	configPath string

	status     string
	statusKind components.StatusKind
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140

	// Lines taken by everything except bill rows: header, metric cards,
	// table title and column header, card borders, overflow line, status bar.
	chromeHeight     = 13
	minVisibleRows   = 3
	minContentHeight = 5
)

// NewApp creates a new TUI app model over an unloaded tracker.
func NewApp(tracker *bills.Tracker, cfg config.Config, opts Options) App {
	clock := opts.Clock
	if clock == nil {
		clock = bills.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.Path()
	}

	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 12
	ti.Prompt = ""

	return App{
		tracker:     tracker,
		clock:       clock,
		logger:      logger,
		cfg:         cfg,
		dirty:       make(map[string]bool),
		amountInput: ti,
		addVals:     &billFormValues{},
		setupVals:   &SetupValues{},
		needSetup:   opts.NeedSetup,
		configPath:  configPath,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadBillsCmd(a.tracker),
	)
}

// loadBillsCmd reads the bills directory. No other command touches the
// tracker while a load is in flight, because keys are ignored until
// BillsLoadedMsg arrives.
func loadBillsCmd(tracker *bills.Tracker) tea.Cmd {
	return func() tea.Msg {
		return BillsLoadedMsg{Err: tracker.LoadBills()}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(a.formWidth())
		}
		a.ensureVisible()
		return a, nil

	case BillsLoadedMsg:
		if msg.Err != nil {
			a.loadErr = msg.Err
			a.logger.Error("loading bills", "dir", a.tracker.Root(), "err", msg.Err)
			return a, nil
		}
		if !a.loaded {
			// Later months sort ahead of the current one.
			if ix, _, ok := a.tracker.FindMonth(a.tracker.CurrentKey()); ok {
				a.activeTab = ix
			}
		}
		a.loaded = true
		a.loadErr = nil
		a.clearDirty()
		a.clampTab()
		a.clampCursor()
		a.setStatus(fmt.Sprintf("loaded %d months from %s", a.tracker.GetBillMonthCount(), a.tracker.Root()), components.StatusInfo)

		if a.needSetup {
			*a.setupVals = SetupValuesFrom(a.cfg, a.tracker.Root())
			a.setupForm = NewSetupForm(a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			a.mode = modeSetup
			return a, a.setupForm.Init()
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.mode != modeBrowse {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.loadErr != nil {
			switch msg.String() {
			case "r":
				a.loadErr = nil
				return a, loadBillsCmd(a.tracker)
			case "q", "esc":
				return a, tea.Quit
			}
			return a, nil
		}

		if !a.loaded {
			return a, nil
		}

		switch a.mode {
		case modeSetup:
			return a.updateSetupForm(msg)
		case modeAddBill:
			return a.updateAddForm(msg)
		case modeEditAmount:
			return a.updateAmountInput(msg)
		case modeConfirmDelete:
			return a.updateConfirmDelete(msg)
		case modeConfirmQuit:
			return a.updateConfirmQuit(msg)
		}

		return a.updateBrowse(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.) to the active widget
	switch a.mode {
	case modeSetup:
		return a.updateSetupForm(msg)
	case modeAddBill:
		return a.updateAddForm(msg)
	case modeEditAmount:
		var cmd tea.Cmd
		a.amountInput, cmd = a.amountInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// Dismiss help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		if a.anyDirty() {
			a.mode = modeConfirmQuit
			return a, nil
		}
		return a, tea.Quit

	case "left", "h":
		if a.activeTab > 0 {
			a.selectTab(a.activeTab - 1)
		}
	case "right", "l":
		if a.activeTab < a.tracker.GetBillMonthCount()-1 {
			a.selectTab(a.activeTab + 1)
		}
	case "j", "down":
		if a.cursor < a.billCount()-1 {
			a.cursor++
			a.ensureVisible()
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
			a.ensureVisible()
		}
	case "g":
		a.cursor = 0
		a.offset = 0
	case "G":
		a.cursor = a.billCount() - 1
		a.clampCursor()
		a.ensureVisible()

	case " ":
		a.togglePaid()
	case "e", "enter":
		return a.startEditAmount()
	case "a":
		return a.startAddBill()
	case "d", "delete":
		if a.billCount() == 0 {
			return a, nil
		}
		if a.cfg.TUI.ConfirmDelete {
			a.mode = modeConfirmDelete
			return a, nil
		}
		a.deleteBill()
	case "n":
		a.carryOver()
	case "s":
		a.saveMonth()
	case "S":
		a.saveAll()
	case "r":
		if a.anyDirty() {
			a.setStatus("unsaved changes: save with s/S before reloading", components.StatusError)
			return a, nil
		}
		a.loaded = false
		return a, loadBillsCmd(a.tracker)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.cursor > 0 {
			a.cursor--
			a.ensureVisible()
		}
	case tea.MouseButtonWheelDown:
		if a.cursor < a.billCount()-1 {
			a.cursor++
			a.ensureVisible()
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		// Tab bar is the first line
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.selectTab(tab)
			}
		}
	}
	return a, nil
}

// ─── Editing ────────────────────────────────────────────────────

func (a App) startEditAmount() (tea.Model, tea.Cmd) {
	m := a.currentMonth()
	if m == nil {
		return a, nil
	}
	b, err := m.GetBill(a.cursor)
	if err != nil {
		return a, nil
	}
	a.amountInput.SetValue(b.Amount)
	a.amountInput.CursorEnd()
	a.mode = modeEditAmount
	return a, a.amountInput.Focus()
}

func (a App) updateAmountInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.amountInput.Blur()
		a.mode = modeBrowse
		return a, nil
	case "enter":
		value := strings.TrimSpace(a.amountInput.Value())
		if err := validAmount(value); err != nil {
			a.setStatus(err.Error(), components.StatusError)
			return a, nil
		}
		m := a.currentMonth()
		err := m.UpdateBill(a.cursor, func(b *bills.Bill) { b.Amount = value })
		if err != nil {
			a.setStatus(err.Error(), components.StatusError)
		} else {
			a.markDirty(m)
			a.setStatus("amount updated", components.StatusInfo)
		}
		a.amountInput.Blur()
		a.mode = modeBrowse
		return a, nil
	}

	var cmd tea.Cmd
	a.amountInput, cmd = a.amountInput.Update(msg)
	return a, cmd
}

func (a App) startAddBill() (tea.Model, tea.Cmd) {
	m := a.currentMonth()
	if m == nil {
		return a, nil
	}
	*a.addVals = billFormValues{}
	a.addForm = newAddBillForm(a.addVals, cli.FormatMonth(m.Date()))
	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(a.formWidth())
	}
	a.mode = modeAddBill
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.addForm = nil
		a.mode = modeBrowse
		a.setStatus("add cancelled", components.StatusInfo)
		return a, nil
	}

	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		m := a.currentMonth()
		b := a.addVals.bill()
		if a.addVals.Paid {
			b.MarkPaid(a.clock.Now())
		}
		if err := b.Validate(); err != nil {
			a.setStatus(err.Error(), components.StatusError)
		} else {
			m.AddBill(b)
			a.markDirty(m)
			a.cursor = m.BillCount() - 1
			a.ensureVisible()
			a.setStatus("added "+b.Creditor, components.StatusInfo)
		}
		a.addForm = nil
		a.mode = modeBrowse
		return a, nil
	case huh.StateAborted:
		a.addForm = nil
		a.mode = modeBrowse
		return a, nil
	}
	return a, cmd
}

func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.mode = modeBrowse
	if msg.String() == "y" {
		a.deleteBill()
	} else {
		a.setStatus("delete cancelled", components.StatusInfo)
	}
	return a, nil
}

func (a App) updateConfirmQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.mode = modeBrowse
	switch msg.String() {
	case "y":
		return a, tea.Quit
	case "S":
		if a.saveAll() {
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.saveSetupConfig()
		a.finishSetup()
		return a, nil
	case huh.StateAborted:
		a.finishSetup()
		return a, nil
	}
	return a, cmd
}

func (a *App) finishSetup() {
	a.needSetup = false
	a.setupForm = nil
	a.mode = modeBrowse
}

func (a *App) saveSetupConfig() {
	cfg := a.cfg
	a.setupVals.Apply(&cfg)
	if err := config.SaveTo(a.configPath, cfg); err != nil {
		a.setStatus("saving config: "+err.Error(), components.StatusError)
		return
	}
	a.cfg = cfg
	theme.SetActive(cfg.Appearance.Theme)
	if cfg.General.BillsDir != a.tracker.Root() {
		a.setStatus("config saved; new bills directory applies on next launch", components.StatusOK)
		return
	}
	a.setStatus("config saved to "+a.configPath, components.StatusOK)
}

func (a *App) togglePaid() {
	m := a.currentMonth()
	if m == nil {
		return
	}
	now := a.clock.Now()
	var paid bool
	err := m.UpdateBill(a.cursor, func(b *bills.Bill) {
		if b.Paid() {
			b.MarkUnpaid()
		} else {
			b.MarkPaid(now)
		}
		paid = b.Paid()
	})
	if err != nil {
		return
	}
	a.markDirty(m)
	if paid {
		a.setStatus("marked paid", components.StatusInfo)
	} else {
		a.setStatus("marked unpaid", components.StatusInfo)
	}
}

func (a *App) deleteBill() {
	m := a.currentMonth()
	if m == nil {
		return
	}
	b, err := m.GetBill(a.cursor)
	if err != nil {
		return
	}
	if err := m.RemoveBill(a.cursor); err != nil {
		a.setStatus(err.Error(), components.StatusError)
		return
	}
	a.markDirty(m)
	a.clampCursor()
	a.ensureVisible()
	a.setStatus("deleted "+b.Creditor, components.StatusInfo)
}

// carryOver fills an empty month with the recurring bills of the month
// before it, all unpaid.
func (a *App) carryOver() {
	m := a.currentMonth()
	if m == nil {
		return
	}
	if m.BillCount() > 0 {
		a.setStatus(cli.FormatMonth(m.Date())+" already has bills", components.StatusError)
		return
	}
	prev, err := a.tracker.GetBillMonth(a.activeTab + 1)
	if err != nil {
		a.setStatus("no earlier month to carry over", components.StatusError)
		return
	}
	for _, b := range prev.CarryOver(m.Date()).Bills() {
		m.AddBill(b)
	}
	a.markDirty(m)
	a.cursor, a.offset = 0, 0
	a.setStatus(fmt.Sprintf("carried %d bills over from %s", m.BillCount(), cli.FormatMonth(prev.Date())), components.StatusInfo)
}

func (a *App) saveMonth() bool {
	m := a.currentMonth()
	if m == nil {
		return false
	}
	if err := a.tracker.StoreBill(a.activeTab); err != nil {
		a.logger.Error("saving month", "month", m.Date(), "err", err)
		a.setStatus(saveErrorText(err), components.StatusError)
		return false
	}
	delete(a.dirty, m.Date())
	a.setStatus("saved "+bills.MonthFileName(m.Date()), components.StatusOK)
	return true
}

func (a *App) saveAll() bool {
	if err := a.tracker.StoreBills(); err != nil {
		a.logger.Error("saving months", "err", err)
		a.setStatus(saveErrorText(err), components.StatusError)
		return false
	}
	a.clearDirty()
	a.setStatus(fmt.Sprintf("saved %d months", a.tracker.GetBillMonthCount()), components.StatusOK)
	return true
}

func saveErrorText(err error) string {
	switch {
	case errors.Is(err, bills.ErrParse):
		return "cannot save: " + err.Error()
	case errors.Is(err, bills.ErrStorage):
		return "write failed: " + err.Error()
	}
	return err.Error()
}

// ─── State helpers ──────────────────────────────────────────────

func (a App) currentMonth() *bills.Month {
	m, err := a.tracker.GetBillMonth(a.activeTab)
	if err != nil {
		return nil
	}
	return m
}

func (a App) billCount() int {
	if m := a.currentMonth(); m != nil {
		return m.BillCount()
	}
	return 0
}

func (a *App) selectTab(ix int) {
	a.activeTab = ix
	a.clampTab()
	a.cursor, a.offset = 0, 0
}

func (a *App) clampTab() {
	if n := a.tracker.GetBillMonthCount(); a.activeTab >= n {
		a.activeTab = n - 1
	}
	if a.activeTab < 0 {
		a.activeTab = 0
	}
}

func (a *App) clampCursor() {
	if n := a.billCount(); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// visibleRows is the number of bill rows that fit in the table card.
func (a App) visibleRows() int {
	rows := a.height - chromeHeight
	if rows < minVisibleRows {
		rows = minVisibleRows
	}
	return rows
}

func (a *App) ensureVisible() {
	rows := a.visibleRows()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+rows {
		a.offset = a.cursor - rows + 1
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

func (a *App) markDirty(m *bills.Month) { a.dirty[m.Date()] = true }

func (a *App) clearDirty() {
	for k := range a.dirty {
		delete(a.dirty, k)
	}
}

func (a App) anyDirty() bool { return len(a.dirty) > 0 }

func (a *App) setStatus(msg string, kind components.StatusKind) {
	a.status = msg
	a.statusKind = kind
}

func (a App) tabs() []components.Tab {
	months := a.tracker.Months()
	tabs := make([]components.Tab, len(months))
	for i, m := range months {
		tabs[i] = components.Tab{Label: cli.FormatMonth(m.Date()), Dirty: a.dirty[m.Date()]}
	}
	return tabs
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	return components.TabAtX(a.tabs(), a.activeTab, a.width, x)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) formWidth() int {
	w := a.contentWidth() / 2
	if w < 40 {
		w = 40
	}
	return w
}

// ─── Views ──────────────────────────────────────────────────────

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.loadErr != nil {
		return a.viewLoadError()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	// Setup wizard
	if a.mode == modeSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  econo needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewCard(title, body string) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	card := cardStyle.Render(titleStyle.Render(title) + "\n\n" + body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoading() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	return a.viewCard("◈ EconoManager", dim.Render("Reading bills from "+a.tracker.Root()))
}

func (a App) viewLoadError() string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Error).Background(t.Surface)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	body := errStyle.Render(a.loadErr.Error()) + "\n\n" +
		dim.Render("r retry · q quit")
	return a.viewCard("◈ Could not load bills", body)
}

func (a App) viewHelp() string {
	t := theme.Active

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"← → h l", "Previous / Next month"},
			{"j k", "Move between bills"},
			{"g G", "First / Last bill"},
			{"click", "Select month tab"},
		}},
		{"Bills", []struct{ key, desc string }{
			{"space", "Toggle paid (dated today)"},
			{"e", "Edit amount"},
			{"a", "Add bill"},
			{"d", "Delete bill"},
			{"n", "Carry over previous month"},
		}},
		{"Files", []struct{ key, desc string }{
			{"s", "Save month"},
			{"S", "Save all months"},
			{"r", "Reload from disk"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return a.viewCard("◈ Keyboard Shortcuts", b.String())
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: month tabs + bills directory
	infoStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.tabs(), a.activeTab, w) + "\n" +
		infoStyle.Render(" "+a.tracker.Root())

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.hints(), a.status, a.statusKind)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.mode == modeAddBill && a.addForm != nil {
		content = components.ContentCard("Add bill", a.addForm.View(), a.formWidth()+4)
	} else {
		content = a.renderMonthTab(cw)
	}

	// 4. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	switch a.mode {
	case modeEditAmount:
		return "enter save · esc cancel"
	case modeAddBill:
		return "tab next · enter confirm · esc cancel"
	case modeConfirmDelete:
		return "delete this bill? y yes · any key no"
	case modeConfirmQuit:
		return "unsaved changes! y quit anyway · S save all and quit · any key stay"
	}
	hint := "space paid · a add · e edit · d delete · s save · ? help · q quit"
	if a.anyDirty() {
		hint = "[unsaved] " + hint
	}
	return hint
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
