package bills

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileSystem is the storage the tracker reads and writes month files through.
type FileSystem interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
	// ListFiles returns the names of the non-directory entries of path.
	ListFiles(path string) ([]string, error)
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// ReadLines returns the lines of the file at path without line endings.
	ReadLines(path string) ([]string, error)
	// WriteFile replaces the contents of the file at path.
	WriteFile(path string, data []byte) error
}

// maxLineSize bounds a single line read from a month file.
const maxLineSize = 1 << 20

// OSFileSystem is the FileSystem backed by the local disk.
type OSFileSystem struct{}

var _ FileSystem = OSFileSystem{}

func (OSFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSFileSystem) ListFiles(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (OSFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o750)
}

func (OSFileSystem) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is built from the configured bills directory
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func (OSFileSystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}

// EnsureDataDir creates the bills directory if it does not exist yet.
func EnsureDataDir(fsys FileSystem, path string) error {
	if fsys.IsDir(path) {
		return nil
	}
	if err := fsys.MkdirAll(path); err != nil {
		return &StorageError{Op: "create directory", Path: path, Err: err}
	}
	return nil
}

// MonthFileName returns the file name a month is stored under.
func MonthFileName(key string) string {
	return fmt.Sprintf("Bills_%s.csv", key)
}

func monthFilePath(root, key string) string {
	return filepath.Join(root, MonthFileName(key))
}

// Clock supplies the current local time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
