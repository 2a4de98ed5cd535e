// Package wholefile reads entire files into freshly allocated buffers.
//
// Read is the reference implementation. The other strategies registered in
// this package satisfy the same contract and exist so they can be compared
// against each other by the benchmark runner.
package wholefile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Read returns the exact contents of the file at path.
//
// The size is taken by seeking to the end of the file and back, and the
// contents are read in one pass into a buffer of exactly that size. If the
// file shrinks between the size check and the read, the buffer is truncated
// to the bytes actually read. An open failure is reported as *FileOpenError;
// a path that opens but is not a regular file yields ErrNotRegular.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newOpenError(path, err)
	}
	defer f.Close()

	// Seeking a directory reports a hash offset, not a size.
	if err := checkRegular(f); err != nil {
		return nil, err
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("seek end: %w", err)
	}
	if size < 0 || uint64(size) > math.MaxInt {
		return nil, fmt.Errorf("file size %d out of range", size)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	return trimShort(buf, n, err)
}

// trimShort maps the result of io.ReadFull to the returned contents.
// End-of-file before the buffer is full is a short read, not a failure.
func trimShort(buf []byte, n int, err error) ([]byte, error) {
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read: %w", err)
	}
	return buf[:n], nil
}

func checkRegular(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s (%s)", ErrNotRegular, f.Name(), info.Mode().Type())
	}
	return nil
}

// statSize returns the size reported by Stat, or zero if Stat fails.
// Callers only use it as a capacity hint.
func statSize(f *os.File) int64 {
	info, err := f.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}
