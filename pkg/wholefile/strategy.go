package wholefile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadFunc reads the whole file at path into a new buffer.
type ReadFunc func(path string) ([]byte, error)

// Strategy is a named implementation of the whole-file read contract.
type Strategy struct {
	Name        string
	Description string
	// Default reports whether the strategy runs when none are selected.
	Default bool
	Read    ReadFunc
}

// Strategy names.
const (
	NameStdio      = "stdio"
	NameStream     = "stream"
	NameRdbuf      = "rdbuf"
	NameRdbufMove  = "rdbuf_move"
	NameIter       = "iter"
	NameMmap       = "mmap"
	NameOSReadFile = "osreadfile"
)

var registry = []Strategy{
	{Name: NameStdio, Description: "seek for size, read into an exact buffer", Default: true, Read: Read},
	{Name: NameStream, Description: "buffered reader into an exact buffer", Default: true, Read: readStream},
	{Name: NameRdbuf, Description: "bytes.Buffer.ReadFrom the file", Default: true, Read: readRdbuf},
	{Name: NameRdbufMove, Description: "io.ReadAll the file", Default: true, Read: readRdbufMove},
	{Name: NameIter, Description: "byte-at-a-time through a buffered reader", Default: false, Read: readIter},
	{Name: NameMmap, Description: "memory-map and copy", Default: true, Read: readMmap},
	{Name: NameOSReadFile, Description: "os.ReadFile", Default: true, Read: readOSReadFile},
}

// Strategies returns every registered strategy in a stable order.
func Strategies() []Strategy {
	out := make([]Strategy, len(registry))
	copy(out, registry)
	return out
}

// Defaults returns the strategies enabled by default.
func Defaults() []Strategy {
	var out []Strategy
	for _, s := range registry {
		if s.Default {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the strategy with the given name.
func Lookup(name string) (Strategy, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Select resolves names to strategies, preserving order and dropping
// duplicates. An empty list selects the defaults.
func Select(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		seen[name] = true
		out = append(out, s)
	}
	return out, nil
}

func readStream(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newOpenError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	buf := make([]byte, info.Size())
	n, err := io.ReadFull(bufio.NewReader(f), buf)
	return trimShort(buf, n, err)
}

func readRdbuf(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newOpenError(path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	buf.Grow(int(statSize(f)) + bytes.MinRead)
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return buf.Bytes(), nil
}

func readRdbufMove(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newOpenError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return data, nil
}

func readIter(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newOpenError(path, err)
	}
	defer f.Close()

	out := make([]byte, 0, statSize(f))
	r := bufio.NewReader(f)
	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
		out = append(out, c)
	}
}

// readMmap maps the file and copies the mapping into an owned buffer so the
// caller never holds a reference to mapped memory.
func readMmap(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newOpenError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	// Zero-length mappings are rejected by the kernel.
	if info.Size() == 0 {
		return []byte{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	defer func() {
		_ = m.Unmap()
	}()

	buf := make([]byte, len(m))
	copy(buf, m)
	return buf, nil
}

func readOSReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && pathErr.Op == "open" {
			return nil, newOpenError(path, err)
		}
		return nil, fmt.Errorf("read: %w", err)
	}
	return data, nil
}
