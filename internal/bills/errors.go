package bills

import (
	"errors"
	"fmt"
)

// Sentinel errors. All errors returned by this package wrap one of these.
var (
	ErrStorage        = errors.New("storage error")
	ErrParse          = errors.New("parse error")
	ErrInvalidIndex   = errors.New("index out of range")
	ErrDuplicateMonth = errors.New("month already exists")
)

// StorageError reports a missing directory, unreadable file or failed write.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, ErrStorage)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap lets errors.Is match both ErrStorage and the underlying cause.
func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStorage}
	}
	return []error{ErrStorage, e.Err}
}

// ParseError reports a malformed bills file or filename.
// Line is 1-based; zero means the error concerns the file as a whole.
type ParseError struct {
	Path   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// IndexError reports an out-of-range position in a month or tracker.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

func checkIndex(ix, n int) error {
	if ix < 0 || ix >= n {
		return &IndexError{Index: ix, Len: n}
	}
	return nil
}
