package wholefile

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrUnknownStrategy is returned by Lookup for a name that is not registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrNotRegular is returned by Read when the path opens but is not a
// regular file, such as a directory.
var ErrNotRegular = errors.New("not a regular file")

// FileOpenError is returned when the file to be read cannot be opened.
// Code carries the platform error number of the failed open call, or zero
// when the failure did not originate from a system call.
type FileOpenError struct {
	Path string
	Code syscall.Errno
	Err  error
}

func newOpenError(path string, err error) *FileOpenError {
	var errno syscall.Errno
	errors.As(err, &errno)
	return &FileOpenError{Path: path, Code: errno, Err: err}
}

// Error implements the error interface.
func (e *FileOpenError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("cannot open %s (errno %d): %v", e.Path, int(e.Code), e.Err)
	}
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error so errors.Is(err, fs.ErrNotExist) works.
func (e *FileOpenError) Unwrap() error {
	return e.Err
}
