package bills

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
)

var errNotDir = errors.New("not a directory")

// Tracker owns every month of bills found under a root directory.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	root   string
	fs     FileSystem
	clock  Clock
	logger *slog.Logger

	months []*Month
	loaded bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithFS replaces the local disk with fsys.
func WithFS(fsys FileSystem) Option {
	return func(t *Tracker) { t.fs = fsys }
}

// WithClock sets the clock used to pick the current month.
func WithClock(c Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

// WithLogger sets the logger for load and store diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// NewTracker returns an unloaded tracker for the bills directory root.
func NewTracker(root string, opts ...Option) *Tracker {
	t := &Tracker{
		root:   root,
		fs:     OSFileSystem{},
		clock:  SystemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the bills directory.
func (t *Tracker) Root() string { return t.root }

// Loaded reports whether LoadBills has succeeded at least once.
func (t *Tracker) Loaded() bool { return t.loaded }

// CurrentKey returns the month key of the clock's current time.
func (t *Tracker) CurrentKey() string { return MonthKey(t.clock.Now()) }

// LoadBills reads every month file under the root directory.
//
// After a successful load the months are sorted newest first and the
// current month is present exactly once. It is the first month unless files
// for later months exist, which keep their place ahead of it. The load is all-or-nothing: on error the
// tracker keeps whatever it held before.
func (t *Tracker) LoadBills() error {
	if !t.fs.IsDir(t.root) {
		return &StorageError{Op: "load bills", Path: t.root, Err: errNotDir}
	}

	files, err := t.fs.ListFiles(t.root)
	if err != nil {
		return &StorageError{Op: "list", Path: t.root, Err: err}
	}
	sort.Strings(files)

	months := make([]*Month, 0, len(files)+1)
	seen := make(map[string]string, len(files))

	for _, name := range files {
		if !isMonthFile(name) {
			t.logger.Debug("skipping non-bills file", "file", name)
			continue
		}

		path := filepath.Join(t.root, name)
		key, ok := parseFileName(name)
		if !ok {
			return &ParseError{Path: path, Reason: "file name does not contain a YYYY_MM month"}
		}
		if prev, dup := seen[key]; dup {
			return &ParseError{Path: path, Reason: fmt.Sprintf("month %s already loaded from %s", key, prev)}
		}
		seen[key] = name

		lines, err := t.fs.ReadLines(path)
		if errors.Is(err, bufio.ErrTooLong) {
			return &ParseError{Path: path, Reason: "line too long"}
		}
		if err != nil {
			return &StorageError{Op: "read", Path: path, Err: err}
		}
		rows, err := decodeRows(path, lines)
		if err != nil {
			return err
		}

		months = append(months, NewMonth(key, rows...))
		t.logger.Debug("loaded month", "month", key, "bills", len(rows))
	}

	current := t.CurrentKey()
	if _, ok := seen[current]; !ok {
		months = append(months, NewMonth(current))
		t.logger.Info("added current month", "month", current)
	}
	sortMonths(months)

	t.months = months
	t.loaded = true
	return nil
}

// StoreBills writes every month in sequence order, stopping at the first
// failure.
func (t *Tracker) StoreBills() error {
	for ix := range t.months {
		if err := t.StoreBill(ix); err != nil {
			return err
		}
	}
	return nil
}

// StoreBill writes the month at ix to Bills_<key>.csv, replacing any
// existing file.
func (t *Tracker) StoreBill(ix int) error {
	if err := checkIndex(ix, len(t.months)); err != nil {
		return fmt.Errorf("store month: %w", err)
	}

	m := t.months[ix]
	body, err := encodeRows(m.bills)
	if err != nil {
		return fmt.Errorf("store month %s: %w", m.Date(), err)
	}

	path := monthFilePath(t.root, m.Date())
	if err := t.fs.WriteFile(path, []byte(body)); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	t.logger.Debug("stored month", "month", m.Date(), "bills", m.BillCount(), "path", path)
	return nil
}

// AddBillMonth inserts m at its sorted position. It refuses a month whose
// key is malformed or already present, leaving the tracker unchanged.
func (t *Tracker) AddBillMonth(m *Month) error {
	if !ValidMonthKey(m.Date()) {
		return &ParseError{Path: MonthFileName(m.Date()), Reason: "not a YYYY_MM month"}
	}
	if _, _, ok := t.FindMonth(m.Date()); ok {
		return fmt.Errorf("add month %s: %w", m.Date(), ErrDuplicateMonth)
	}

	pos := sort.Search(len(t.months), func(i int) bool {
		return t.months[i].Date() < m.Date()
	})
	t.months = append(t.months, nil)
	copy(t.months[pos+1:], t.months[pos:])
	t.months[pos] = m
	return nil
}

// GetBillMonthCount returns the number of months.
func (t *Tracker) GetBillMonthCount() int { return len(t.months) }

// GetBillMonth returns the month at ix.
func (t *Tracker) GetBillMonth(ix int) (*Month, error) {
	if err := checkIndex(ix, len(t.months)); err != nil {
		return nil, fmt.Errorf("get month: %w", err)
	}
	return t.months[ix], nil
}

// FindMonth returns the position and month for key.
func (t *Tracker) FindMonth(key string) (int, *Month, bool) {
	for i, m := range t.months {
		if m.Date() == key {
			return i, m, true
		}
	}
	return -1, nil, false
}

// Months returns the months in sequence order.
func (t *Tracker) Months() []*Month {
	out := make([]*Month, len(t.months))
	copy(out, t.months)
	return out
}

// sortMonths orders months newest first. Zero-padded keys sort
// lexicographically.
func sortMonths(months []*Month) {
	sort.SliceStable(months, func(i, j int) bool {
		return months[i].Date() > months[j].Date()
	})
}
